package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/alder-ui/alder/pkg/dom"
)

// Handler computes the next accumulator from an event payload and the
// current accumulator. The registry stores whatever it returns and
// hands it back on the next event.
type Handler func(payload, acc any) any

// entry is one symbol's routing slot.
type entry struct {
	name    string
	handler Handler
	acc     any
	busy    bool
}

// Registry maps dispatch symbols to handler/accumulator pairs. It is
// the only shared mutable state in the engine: each entry is replaced
// wholesale at the end of a dispatch cycle and read by nothing else.
type Registry struct {
	mu      sync.Mutex
	nextSym uint64
	entries map[dom.Symbol]*entry
	logger  *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		entries: map[dom.Symbol]*entry{},
		logger:  logger.With("component", "runtime"),
	}
}

// NewSymbol allocates a fresh dispatch symbol. The name is carried for
// diagnostics only.
func (r *Registry) NewSymbol(name string) dom.Symbol {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSym++
	sym := dom.Symbol(r.nextSym)
	r.entries[sym] = &entry{name: name}
	return sym
}

// Register installs the handler and initial accumulator for a symbol.
func (r *Registry) Register(sym dom.Symbol, h Handler, acc any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sym]
	if !ok {
		e = &entry{}
		r.entries[sym] = e
	}
	e.handler = h
	e.acc = acc
}

// Accumulator returns the current accumulator for a symbol.
func (r *Registry) Accumulator(sym dom.Symbol) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sym]
	if !ok || e.handler == nil {
		return nil, false
	}
	return e.acc, true
}

// Dispatch runs one full event cycle: look the entry up, invoke its
// handler, store the returned accumulator. It implements
// dom.Dispatcher.
//
// A dispatch fired synchronously from inside a running cycle for the
// same symbol is rejected with ErrReentrantDispatch rather than
// interleaved; the host's single-threaded event delivery makes any
// other overlap impossible.
func (r *Registry) Dispatch(sym dom.Symbol, payload any) error {
	r.mu.Lock()
	e, ok := r.entries[sym]
	if !ok || e.handler == nil {
		r.mu.Unlock()
		r.logger.Warn("event for unregistered symbol", "symbol", uint64(sym))
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, uint64(sym))
	}
	if e.busy {
		r.mu.Unlock()
		r.logger.Warn("re-entrant dispatch rejected", "symbol", uint64(sym), "app", e.name)
		return fmt.Errorf("%w: %s", ErrReentrantDispatch, e.name)
	}
	e.busy = true
	acc := e.acc
	handler := e.handler
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		e.busy = false
		r.mu.Unlock()
	}()

	next := handler(payload, acc)

	r.mu.Lock()
	e.acc = next
	r.mu.Unlock()
	return nil
}
