package render

import (
	"strings"

	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/vdom"
)

// clickEvent is the native event name click handlers are bound to.
const clickEvent = "onclick"

// Render materializes a virtual tree into a detached native node.
// Children are rendered and appended in order, then attributes are
// applied. Handlers are bound to sym; the attribute's message is the
// payload delivered when the event fires.
func Render[Msg any](doc dom.Document, sym dom.Symbol, h *vdom.Html[Msg]) dom.Node {
	if h.Kind == vdom.KindText {
		return doc.CreateText(h.Text)
	}

	n := doc.CreateElement(h.Tag)
	for _, child := range h.Children {
		doc.AppendChild(n, Render(doc, sym, child))
	}
	for _, attr := range h.Attrs {
		setAttribute(doc, sym, n, attr)
	}
	return n
}

// setAttribute applies one attribute to a live element. Render and
// Apply share this so patch-added attributes behave identically to
// rendered ones.
func setAttribute[Msg any](doc dom.Document, sym dom.Symbol, n dom.Node, attr vdom.Attribute[Msg]) {
	switch attr.Kind {
	case vdom.AttrID:
		doc.SetAttribute(n, "id", attr.Value)
	case vdom.AttrClassList:
		doc.SetAttribute(n, "class", strings.Join(attr.Classes, " "))
	case vdom.AttrOnClick:
		doc.BindEvent(n, sym, clickEvent, attr.Msg)
	}
}

// clearAttribute removes one attribute from a live element.
func clearAttribute[Msg any](doc dom.Document, n dom.Node, attr vdom.Attribute[Msg]) {
	switch attr.Kind {
	case vdom.AttrID:
		doc.RemoveAttribute(n, "id")
	case vdom.AttrClassList:
		doc.RemoveAttribute(n, "class")
	case vdom.AttrOnClick:
		doc.UnbindEvent(n, clickEvent)
	}
}
