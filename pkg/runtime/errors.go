package runtime

import "errors"

var (
	// ErrMountNotFound reports that the mount container id did not
	// resolve to an element at start time.
	ErrMountNotFound = errors.New("runtime: mount container not found")

	// ErrUnknownSymbol reports an event for a symbol with no registry
	// entry.
	ErrUnknownSymbol = errors.New("runtime: no handler registered for symbol")

	// ErrReentrantDispatch reports an event fired synchronously from
	// within an in-progress dispatch cycle for the same symbol.
	ErrReentrantDispatch = errors.New("runtime: re-entrant dispatch rejected")
)
