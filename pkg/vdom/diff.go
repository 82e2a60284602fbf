package vdom

// Diff compares two trees and returns the patch that transforms old
// into new. It is pure: no tree is mutated and no side effects occur.
// Message payloads are compared with the default Equal.
func Diff[Msg any](old, new *Html[Msg]) Patch[Msg] {
	return DiffWith(Equal[Msg], old, new)
}

// DiffWith is Diff with a caller-supplied message equality. Supply a
// custom eq when deep equality is wrong for the message type (values
// holding funcs, cyclic structures).
//
// Dispatch, first match wins:
//   - one side nil: Add or Remove (only reachable through child tails)
//   - kind mismatch: Replace
//   - text vs text: None when equal, else Replace
//   - tag mismatch: Replace (tag changes are never patched in place)
//   - otherwise: Update(children, attributes)
func DiffWith[Msg any](eq EqualFunc[Msg], old, new *Html[Msg]) Patch[Msg] {
	switch {
	case old == nil && new == nil:
		return Patch[Msg]{Op: OpNone}
	case old == nil:
		return Patch[Msg]{Op: OpAdd, Node: new}
	case new == nil:
		return Patch[Msg]{Op: OpRemove}
	case old.Kind != new.Kind:
		return Patch[Msg]{Op: OpReplace, Node: new}
	case old.Kind == KindText:
		if old.Text == new.Text {
			return Patch[Msg]{Op: OpNone}
		}
		return Patch[Msg]{Op: OpReplace, Node: new}
	case old.Tag != new.Tag:
		return Patch[Msg]{Op: OpReplace, Node: new}
	default:
		return Patch[Msg]{
			Op:       OpUpdate,
			Children: diffChildren(eq, old.Children, new.Children),
			Attrs:    diffAttrs(eq, old.Attrs, new.Attrs),
		}
	}
}

// diffChildren pairs children positionally. The result always has
// max(len(old), len(new)) entries; the tail beyond the shorter side is
// exhaustively Remove (old longer) or Add (new longer). The patcher
// relies on this to walk live children in lock-step.
func diffChildren[Msg any](eq EqualFunc[Msg], old, new []*Html[Msg]) []Patch[Msg] {
	n := len(old)
	if len(new) > n {
		n = len(new)
	}
	if n == 0 {
		return nil
	}

	patches := make([]Patch[Msg], 0, n)
	for i := 0; i < n; i++ {
		var o, w *Html[Msg]
		if i < len(old) {
			o = old[i]
		}
		if i < len(new) {
			w = new[i]
		}
		patches = append(patches, DiffWith(eq, o, w))
	}
	return patches
}

// diffAttrs computes the symmetric difference of two attribute lists
// by structural equality: a Remove for every old attribute absent from
// new, then an Add for every new attribute absent from old. A changed
// value therefore appears as a Remove/Add pair, removals first.
func diffAttrs[Msg any](eq EqualFunc[Msg], old, new []Attribute[Msg]) []AttrPatch[Msg] {
	var patches []AttrPatch[Msg]
	for _, a := range old {
		if !containsAttr(eq, new, a) {
			patches = append(patches, AttrPatch[Msg]{Op: AttrRemove, Attr: a})
		}
	}
	for _, a := range new {
		if !containsAttr(eq, old, a) {
			patches = append(patches, AttrPatch[Msg]{Op: AttrAdd, Attr: a})
		}
	}
	return patches
}

func containsAttr[Msg any](eq EqualFunc[Msg], attrs []Attribute[Msg], want Attribute[Msg]) bool {
	for _, a := range attrs {
		if attrsEqual(eq, a, want) {
			return true
		}
	}
	return false
}
