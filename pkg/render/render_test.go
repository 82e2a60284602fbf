package render

import (
	"testing"

	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/dom/memdom"
	"github.com/alder-ui/alder/pkg/vdom"
)

type testMsg uint8

const (
	msgInc testMsg = iota
	msgDec
)

const testSym = dom.Symbol(1)

func TestRenderText(t *testing.T) {
	d := memdom.New()
	n := Render(d, testSym, vdom.Text[testMsg]("hello"))

	mn := n.(*memdom.Node)
	if !mn.IsText() {
		t.Fatal("rendered node is not a text node")
	}
	if mn.TextContent() != "hello" {
		t.Errorf("text = %q, want hello", mn.TextContent())
	}
}

func TestRenderElementTree(t *testing.T) {
	d := memdom.New()
	tree := vdom.Div([]vdom.Attribute[testMsg]{
		vdom.ID[testMsg]("root"),
		vdom.ClassList[testMsg]("a", "b", "c"),
	},
		vdom.Text[testMsg]("x"),
		vdom.Span[testMsg](nil, vdom.Text[testMsg]("y")),
	)

	n := Render(d, testSym, tree).(*memdom.Node)

	if n.Tag() != "div" {
		t.Errorf("tag = %q, want div", n.Tag())
	}
	if v, _ := n.Attr("id"); v != "root" {
		t.Errorf("id = %q, want root", v)
	}
	if v, _ := n.Attr("class"); v != "a b c" {
		t.Errorf("class = %q, want \"a b c\" (space-joined)", v)
	}
	kids := n.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	if !kids[0].IsText() || kids[0].TextContent() != "x" {
		t.Errorf("first child = %+v, want Text(x)", kids[0])
	}
	if kids[1].Tag() != "span" || kids[1].InnerText() != "y" {
		t.Errorf("second child = %+v, want <span>y</span>", kids[1])
	}
}

func TestRenderBindsClickHandler(t *testing.T) {
	d := memdom.New()
	btn := Render(d, testSym, vdom.Button([]vdom.Attribute[testMsg]{vdom.OnClick(msgInc)})).(*memdom.Node)

	if !btn.HasBinding("onclick") {
		t.Fatal("onclick handler not bound")
	}
	sym, payload, ok := d.Binding(btn, "onclick")
	if !ok {
		t.Fatal("binding lookup failed")
	}
	if sym != testSym {
		t.Errorf("symbol = %v, want %v", sym, testSym)
	}
	if payload != msgInc {
		t.Errorf("payload = %v, want %v", payload, msgInc)
	}
}

func TestRenderEmptyClassList(t *testing.T) {
	d := memdom.New()
	n := Render(d, testSym, vdom.Div([]vdom.Attribute[testMsg]{vdom.ClassList[testMsg]()})).(*memdom.Node)
	if v, ok := n.Attr("class"); !ok || v != "" {
		t.Errorf("class = %q, %v; want empty string set", v, ok)
	}
}
