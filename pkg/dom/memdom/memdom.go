// Package memdom is an in-memory implementation of the dom primitives.
// It backs the engine's tests and serves as the authoritative mirror
// for server-driven sessions.
package memdom

import (
	"strings"

	"github.com/alder-ui/alder/pkg/dom"
)

// nodeKind discriminates element and text nodes.
type nodeKind uint8

const (
	kindElement nodeKind = iota
	kindText
)

// binding is one registered event handler.
type binding struct {
	sym     dom.Symbol
	payload any
}

// Node is a live in-memory DOM node.
type Node struct {
	id       uint64
	kind     nodeKind
	tag      string
	text     string
	attrs    map[string]string
	parent   *Node
	children []*Node
	bindings map[string]binding
}

// NodeID implements dom.Node.
func (n *Node) NodeID() uint64 { return n.id }

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.kind == kindText }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// TextContent returns the value of a text node.
func (n *Node) TextContent() string { return n.text }

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Parent returns the parent node, or nil for detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// ChildNodes returns the live child slice. Callers must not mutate it.
func (n *Node) ChildNodes() []*Node { return n.children }

// HasBinding reports whether a handler is bound for the named event.
func (n *Node) HasBinding(event string) bool {
	_, ok := n.bindings[event]
	return ok
}

// InnerText returns the concatenated text content of the subtree.
func (n *Node) InnerText() string {
	if n.kind == kindText {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.InnerText())
	}
	return sb.String()
}

// Document is an in-memory document. A fresh document holds a single
// empty <body> element; tests attach mount containers beneath it.
//
// The document is not safe for concurrent use. The engine is strictly
// synchronous and the document inherits that assumption.
type Document struct {
	nextID     uint64
	body       *Node
	nodes      map[uint64]*Node
	dispatcher dom.Dispatcher
}

// New creates an empty document.
func New() *Document {
	d := &Document{nodes: map[uint64]*Node{}}
	d.body = d.newNode(kindElement)
	d.body.tag = "body"
	return d
}

// Body returns the document's root element.
func (d *Document) Body() *Node { return d.body }

// SetDispatcher installs the dispatcher that receives fired events.
func (d *Document) SetDispatcher(disp dom.Dispatcher) {
	d.dispatcher = disp
}

func (d *Document) newNode(kind nodeKind) *Node {
	d.nextID++
	n := &Node{
		id:       d.nextID,
		kind:     kind,
		attrs:    map[string]string{},
		bindings: map[string]binding{},
	}
	d.nodes[n.id] = n
	return n
}

// NodeByID resolves a node handle by its document-unique id.
func (d *Document) NodeByID(id uint64) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Node {
	n := d.newNode(kindElement)
	n.tag = tag
	return n
}

// CreateText implements dom.Document.
func (d *Document) CreateText(value string) dom.Node {
	n := d.newNode(kindText)
	n.text = value
	return n
}

// SetAttribute implements dom.Document.
func (d *Document) SetAttribute(n dom.Node, name, value string) {
	mem(n).attrs[name] = value
}

// RemoveAttribute implements dom.Document.
func (d *Document) RemoveAttribute(n dom.Node, name string) {
	delete(mem(n).attrs, name)
}

// AppendChild implements dom.Document.
func (d *Document) AppendChild(parent, child dom.Node) {
	p, c := mem(parent), mem(child)
	if c.parent != nil {
		d.RemoveNode(c)
	}
	c.parent = p
	p.children = append(p.children, c)
}

// ReplaceNode implements dom.Document. A detached old node is a no-op.
func (d *Document) ReplaceNode(old, new dom.Node) {
	o, w := mem(old), mem(new)
	p := o.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == o {
			p.children[i] = w
			w.parent = p
			o.parent = nil
			return
		}
	}
}

// RemoveNode implements dom.Document. Detached nodes are a no-op.
func (d *Document) RemoveNode(n dom.Node) {
	m := mem(n)
	p := m.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == m {
			p.children = append(p.children[:i], p.children[i+1:]...)
			m.parent = nil
			return
		}
	}
}

// Children implements dom.Document. The returned slice is a snapshot.
func (d *Document) Children(n dom.Node) []dom.Node {
	m := mem(n)
	out := make([]dom.Node, len(m.children))
	for i, c := range m.children {
		out[i] = c
	}
	return out
}

// ElementByID implements dom.Document, searching from the body.
func (d *Document) ElementByID(id string) (dom.Node, bool) {
	if n := findByID(d.body, id); n != nil {
		return n, true
	}
	return nil, false
}

func findByID(n *Node, id string) *Node {
	if n.attrs["id"] == id && n.kind == kindElement {
		return n
	}
	for _, c := range n.children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// BindEvent implements dom.Document.
func (d *Document) BindEvent(n dom.Node, sym dom.Symbol, event string, payload any) {
	mem(n).bindings[event] = binding{sym: sym, payload: payload}
}

// UnbindEvent implements dom.Document.
func (d *Document) UnbindEvent(n dom.Node, event string) {
	delete(mem(n).bindings, event)
}

// FireEvent simulates the host firing a native event on a node. The
// bound payload is delivered to the installed dispatcher. It returns
// the dispatcher's error, or nil when no handler is bound.
func (d *Document) FireEvent(n dom.Node, event string) error {
	b, ok := mem(n).bindings[event]
	if !ok || d.dispatcher == nil {
		return nil
	}
	return d.dispatcher.Dispatch(b.sym, b.payload)
}

// Binding returns the registered handler slot for an event, if any.
func (d *Document) Binding(n dom.Node, event string) (dom.Symbol, any, bool) {
	b, ok := mem(n).bindings[event]
	return b.sym, b.payload, ok
}

func mem(n dom.Node) *Node {
	return n.(*Node)
}
