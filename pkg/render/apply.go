package render

import (
	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/vdom"
)

// Apply mutates the live subtree rooted at target to match the patch.
// It returns the node occupying target's position afterwards: the
// replacement node for OpReplace, nil for OpRemove, and target itself
// otherwise. Callers holding the root handle must keep the returned
// node.
func Apply[Msg any](doc dom.Document, sym dom.Symbol, target dom.Node, p vdom.Patch[Msg]) dom.Node {
	switch p.Op {
	case vdom.OpNone:
		return target

	case vdom.OpReplace:
		fresh := Render(doc, sym, p.Node)
		doc.ReplaceNode(target, fresh)
		return fresh

	case vdom.OpAdd:
		doc.AppendChild(target, Render(doc, sym, p.Node))
		return target

	case vdom.OpRemove:
		doc.RemoveNode(target)
		return nil

	case vdom.OpUpdate:
		applyChildren(doc, sym, target, doc.Children(target), p.Children)
		for _, ap := range p.Attrs {
			if ap.Op == vdom.AttrAdd {
				setAttribute(doc, sym, target, ap.Attr)
			} else {
				clearAttribute(doc, target, ap.Attr)
			}
		}
		return target
	}
	return target
}

// applyChildren walks live children and patches positionally. Patches
// past the end of the live list are applied to the parent itself; the
// differ guarantees these are exclusively Add, which appends in order.
// Live children past the end of the patch list are left untouched:
// that case cannot arise from a patch generated off the same tree
// pair, so it is treated as a defensive no-op for mismatched input.
func applyChildren[Msg any](doc dom.Document, sym dom.Symbol, parent dom.Node, children []dom.Node, patches []vdom.Patch[Msg]) {
	for i, p := range patches {
		if i < len(children) {
			Apply(doc, sym, children[i], p)
		} else {
			Apply(doc, sym, parent, p)
		}
	}
}
