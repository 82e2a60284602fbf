// Package dom defines the primitive surface the engine consumes from a
// host document. The host (an in-memory document, or a browser driven
// over a wire protocol) is an external collaborator: the engine only
// ever allocates, attaches, and mutates nodes through this contract.
package dom

// Node is an opaque handle to a native node. Handles are created by a
// Document and are only meaningful to the Document that created them.
type Node interface {
	// NodeID returns a stable identifier unique within the owning
	// document.
	NodeID() uint64
}

// Symbol identifies one mounted application's event-routing slot. One
// symbol exists per mounted application; events tagged with it are
// delivered to that application's dispatcher entry.
type Symbol uint64

// Dispatcher delivers native events. The payload is whatever value was
// registered when the event was bound; it is forwarded opaquely.
type Dispatcher interface {
	Dispatch(sym Symbol, payload any) error
}

// Document is the fixed set of native primitives. All mutating calls
// are idempotent where the underlying operation is (setting the same
// attribute twice, removing an absent attribute).
type Document interface {
	// CreateElement allocates a new detached element.
	CreateElement(tag string) Node

	// CreateText allocates a new detached text node.
	CreateText(value string) Node

	// SetAttribute sets a string attribute on an element.
	SetAttribute(n Node, name, value string)

	// RemoveAttribute clears an attribute from an element.
	RemoveAttribute(n Node, name string)

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child Node)

	// ReplaceNode swaps new into old's position, preserving the
	// parent link.
	ReplaceNode(old, new Node)

	// RemoveNode detaches a node from its parent.
	RemoveNode(n Node)

	// Children returns a snapshot of an element's child list at call
	// time. Later mutations do not affect the returned slice.
	Children(n Node) []Node

	// ElementByID resolves an element by its identifier attribute.
	ElementByID(id string) (Node, bool)

	// BindEvent registers an event handler on a node. When the named
	// native event fires, the document delivers payload to the
	// dispatcher registered for sym.
	BindEvent(n Node, sym Symbol, event string, payload any)

	// UnbindEvent detaches the handler for the named event.
	UnbindEvent(n Node, event string)
}
