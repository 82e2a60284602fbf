package runtime

import (
	"fmt"
	"log/slog"

	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/render"
	"github.com/alder-ui/alder/pkg/vdom"
)

// state is the accumulator threaded through dispatch cycles. It is
// replaced wholesale every cycle, never mutated in place.
type state[Model, Msg any] struct {
	model Model
	tree  *vdom.Html[Msg]
}

// Program is one mounted application. Once mounted it stays mounted
// for the lifetime of its document; there is no unmount transition.
type Program[Model, Msg any] struct {
	doc    dom.Document
	reg    *Registry
	sym    dom.Symbol
	view   func(Model) *vdom.Html[Msg]
	update func(Model, Msg) Model
	eq     vdom.EqualFunc[Msg]
	root   dom.Node
	logger *slog.Logger
}

// Option configures a Program at mount time.
type Option[Model, Msg any] func(*Program[Model, Msg])

// WithEquality overrides the message equality used for diffing.
func WithEquality[Model, Msg any](eq vdom.EqualFunc[Msg]) Option[Model, Msg] {
	return func(p *Program[Model, Msg]) {
		p.eq = eq
	}
}

// WithLogger sets the program's logger.
func WithLogger[Model, Msg any](logger *slog.Logger) Option[Model, Msg] {
	return func(p *Program[Model, Msg]) {
		p.logger = logger
	}
}

// Mount starts an application under the element with the given id:
// render view(initial), attach it to the container, and register the
// dispatch handler that runs the update/diff/patch cycle on every
// event.
//
// A missing container is fail-soft: the error is logged and returned,
// nothing is rendered, and nothing panics.
func Mount[Model, Msg any](
	reg *Registry,
	doc dom.Document,
	containerID string,
	view func(Model) *vdom.Html[Msg],
	update func(Model, Msg) Model,
	initial Model,
	opts ...Option[Model, Msg],
) (*Program[Model, Msg], error) {
	p := &Program[Model, Msg]{
		doc:    doc,
		reg:    reg,
		view:   view,
		update: update,
		eq:     vdom.Equal[Msg],
		logger: reg.logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	container, ok := doc.ElementByID(containerID)
	if !ok {
		p.logger.Error("mount container not found, application not started", "container", containerID)
		return nil, fmt.Errorf("%w: %q", ErrMountNotFound, containerID)
	}

	p.sym = reg.NewSymbol(containerID)

	tree := view(initial)
	p.root = render.Render(doc, p.sym, tree)
	doc.AppendChild(container, p.root)

	reg.Register(p.sym, p.step, state[Model, Msg]{model: initial, tree: tree})
	return p, nil
}

// step is the registered dispatch handler: update the model, rebuild
// the view, diff against the previous tree, patch the live root, and
// return the new accumulator.
func (p *Program[Model, Msg]) step(payload, acc any) any {
	st, ok := acc.(state[Model, Msg])
	if !ok {
		p.logger.Error("accumulator has unexpected type", "symbol", uint64(p.sym))
		return acc
	}
	msg, ok := payload.(Msg)
	if !ok {
		p.logger.Warn("event payload has unexpected type, dropped",
			"symbol", uint64(p.sym), "payload", fmt.Sprintf("%T", payload))
		return acc
	}

	model := p.update(st.model, msg)
	tree := p.view(model)

	// A root-level replace swaps the live root; keep the new handle.
	p.root = render.Apply(p.doc, p.sym, p.root, vdom.DiffWith(p.eq, st.tree, tree))

	return state[Model, Msg]{model: model, tree: tree}
}

// Symbol returns the program's dispatch symbol.
func (p *Program[Model, Msg]) Symbol() dom.Symbol { return p.sym }

// Root returns the live root node handle.
func (p *Program[Model, Msg]) Root() dom.Node { return p.root }

// Model returns the current model.
func (p *Program[Model, Msg]) Model() Model {
	acc, ok := p.reg.Accumulator(p.sym)
	if !ok {
		var zero Model
		return zero
	}
	return acc.(state[Model, Msg]).model
}
