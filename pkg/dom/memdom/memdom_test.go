package memdom

import (
	"errors"
	"testing"

	"github.com/alder-ui/alder/pkg/dom"
)

func TestCreateAndAppend(t *testing.T) {
	d := New()

	div := d.CreateElement("div")
	txt := d.CreateText("hello")
	d.AppendChild(div, txt)
	d.AppendChild(d.Body(), div)

	body := d.Body()
	if len(body.ChildNodes()) != 1 {
		t.Fatalf("body children = %d, want 1", len(body.ChildNodes()))
	}
	el := body.ChildNodes()[0]
	if el.Tag() != "div" {
		t.Errorf("Tag = %q, want div", el.Tag())
	}
	if el.InnerText() != "hello" {
		t.Errorf("InnerText = %q, want hello", el.InnerText())
	}
	if el.Parent() != body {
		t.Error("parent link not set")
	}
}

func TestAttributes(t *testing.T) {
	d := New()
	div := d.CreateElement("div")

	d.SetAttribute(div, "class", "a b")
	d.SetAttribute(div, "class", "a b") // idempotent
	if v, ok := mem(div).Attr("class"); !ok || v != "a b" {
		t.Errorf("class = %q, %v; want \"a b\", true", v, ok)
	}

	d.RemoveAttribute(div, "class")
	d.RemoveAttribute(div, "class") // idempotent
	if _, ok := mem(div).Attr("class"); ok {
		t.Error("class still set after removal")
	}
}

func TestReplaceNodePreservesPosition(t *testing.T) {
	d := New()
	parent := d.CreateElement("ul")
	a := d.CreateElement("li")
	b := d.CreateElement("li")
	c := d.CreateElement("li")
	d.AppendChild(parent, a)
	d.AppendChild(parent, b)
	d.AppendChild(parent, c)

	repl := d.CreateElement("span")
	d.ReplaceNode(b, repl)

	kids := mem(parent).ChildNodes()
	if len(kids) != 3 {
		t.Fatalf("children = %d, want 3", len(kids))
	}
	if kids[1].Tag() != "span" {
		t.Errorf("middle child = %q, want span", kids[1].Tag())
	}
	if kids[1].Parent() != mem(parent) {
		t.Error("replacement parent link not set")
	}
	if mem(b).Parent() != nil {
		t.Error("replaced node still has a parent")
	}
}

func TestRemoveNode(t *testing.T) {
	d := New()
	parent := d.CreateElement("div")
	child := d.CreateText("x")
	d.AppendChild(parent, child)

	d.RemoveNode(child)
	if len(mem(parent).ChildNodes()) != 0 {
		t.Error("child not removed")
	}
	// Removing a detached node is a no-op.
	d.RemoveNode(child)
}

func TestChildrenSnapshot(t *testing.T) {
	d := New()
	parent := d.CreateElement("div")
	d.AppendChild(parent, d.CreateText("a"))

	snap := d.Children(parent)
	d.AppendChild(parent, d.CreateText("b"))

	if len(snap) != 1 {
		t.Errorf("snapshot grew after mutation: %d", len(snap))
	}
	if len(d.Children(parent)) != 2 {
		t.Errorf("live children = %d, want 2", len(d.Children(parent)))
	}
}

func TestElementByID(t *testing.T) {
	d := New()
	outer := d.CreateElement("div")
	inner := d.CreateElement("section")
	d.SetAttribute(inner, "id", "target")
	d.AppendChild(outer, inner)
	d.AppendChild(d.Body(), outer)

	got, ok := d.ElementByID("target")
	if !ok {
		t.Fatal("ElementByID missed an attached element")
	}
	if got.NodeID() != inner.NodeID() {
		t.Errorf("found node %d, want %d", got.NodeID(), inner.NodeID())
	}

	if _, ok := d.ElementByID("absent"); ok {
		t.Error("ElementByID found a nonexistent id")
	}
}

type recordingDispatcher struct {
	syms     []dom.Symbol
	payloads []any
	err      error
}

func (r *recordingDispatcher) Dispatch(sym dom.Symbol, payload any) error {
	r.syms = append(r.syms, sym)
	r.payloads = append(r.payloads, payload)
	return r.err
}

func TestBindAndFireEvent(t *testing.T) {
	d := New()
	disp := &recordingDispatcher{}
	d.SetDispatcher(disp)

	btn := d.CreateElement("button")
	d.BindEvent(btn, dom.Symbol(7), "onclick", "payload")

	if err := d.FireEvent(btn, "onclick"); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	if len(disp.syms) != 1 || disp.syms[0] != dom.Symbol(7) {
		t.Errorf("syms = %v, want [7]", disp.syms)
	}
	if disp.payloads[0] != "payload" {
		t.Errorf("payload = %v, want payload", disp.payloads[0])
	}

	// Firing an unbound event is a no-op.
	if err := d.FireEvent(btn, "oninput"); err != nil {
		t.Errorf("unbound event returned error: %v", err)
	}

	// Unbinding stops delivery.
	d.UnbindEvent(btn, "onclick")
	if err := d.FireEvent(btn, "onclick"); err != nil {
		t.Errorf("unbound click returned error: %v", err)
	}
	if len(disp.syms) != 1 {
		t.Errorf("dispatch count = %d after unbind, want 1", len(disp.syms))
	}
}

func TestFireEventPropagatesDispatcherError(t *testing.T) {
	d := New()
	wantErr := errors.New("boom")
	d.SetDispatcher(&recordingDispatcher{err: wantErr})

	btn := d.CreateElement("button")
	d.BindEvent(btn, dom.Symbol(1), "onclick", nil)

	if err := d.FireEvent(btn, "onclick"); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestNodeIDsAreUnique(t *testing.T) {
	d := New()
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		n := d.CreateElement("div")
		if seen[n.NodeID()] {
			t.Fatalf("duplicate node id %d", n.NodeID())
		}
		seen[n.NodeID()] = true
	}
}
