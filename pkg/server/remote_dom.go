package server

import (
	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/dom/memdom"
	"github.com/alder-ui/alder/pkg/protocol"
)

// sessionDocument is the dom.Document a session hands to the engine.
// Every mutating primitive is applied to the in-memory mirror and
// recorded as a protocol op; Flush drains the recorded batch at the
// end of a dispatch cycle. Node refs on the wire are the mirror's
// node ids.
type sessionDocument struct {
	mem *memdom.Document
	ops []protocol.Op
}

func newSessionDocument(mem *memdom.Document) *sessionDocument {
	return &sessionDocument{mem: mem}
}

// Flush returns the recorded ops and resets the batch.
func (s *sessionDocument) Flush() []protocol.Op {
	ops := s.ops
	s.ops = nil
	return ops
}

// recordMount binds a mirror node ref to a container id in the real
// page, so the client can anchor all later ops.
func (s *sessionDocument) recordMount(n dom.Node, containerID string) {
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpMount, Ref: n.NodeID(), Name: containerID})
}

func (s *sessionDocument) CreateElement(tag string) dom.Node {
	n := s.mem.CreateElement(tag)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpCreateElement, Ref: n.NodeID(), Name: tag})
	return n
}

func (s *sessionDocument) CreateText(value string) dom.Node {
	n := s.mem.CreateText(value)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpCreateText, Ref: n.NodeID(), Value: value})
	return n
}

func (s *sessionDocument) SetAttribute(n dom.Node, name, value string) {
	s.mem.SetAttribute(n, name, value)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpSetAttr, Ref: n.NodeID(), Name: name, Value: value})
}

func (s *sessionDocument) RemoveAttribute(n dom.Node, name string) {
	s.mem.RemoveAttribute(n, name)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpRemoveAttr, Ref: n.NodeID(), Name: name})
}

func (s *sessionDocument) AppendChild(parent, child dom.Node) {
	s.mem.AppendChild(parent, child)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpAppend, Ref: parent.NodeID(), Ref2: child.NodeID()})
}

func (s *sessionDocument) ReplaceNode(old, new dom.Node) {
	s.mem.ReplaceNode(old, new)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpReplace, Ref: old.NodeID(), Ref2: new.NodeID()})
}

func (s *sessionDocument) RemoveNode(n dom.Node) {
	s.mem.RemoveNode(n)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpRemove, Ref: n.NodeID()})
}

func (s *sessionDocument) Children(n dom.Node) []dom.Node {
	return s.mem.Children(n)
}

func (s *sessionDocument) ElementByID(id string) (dom.Node, bool) {
	return s.mem.ElementByID(id)
}

func (s *sessionDocument) BindEvent(n dom.Node, sym dom.Symbol, event string, payload any) {
	s.mem.BindEvent(n, sym, event, payload)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpBind, Ref: n.NodeID(), Sym: uint64(sym), Name: event})
}

func (s *sessionDocument) UnbindEvent(n dom.Node, event string) {
	s.mem.UnbindEvent(n, event)
	s.ops = append(s.ops, protocol.Op{Code: protocol.OpUnbind, Ref: n.NodeID(), Name: event})
}
