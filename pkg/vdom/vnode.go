package vdom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Html is a virtual tree node: either an element with a tag, ordered
// attributes and ordered children, or a text node.
//
// Html values are immutable once constructed. A node belongs to
// whichever tree references it; no sharing between the old and new
// tree of a diff cycle is assumed or required.
type Html[Msg any] struct {
	Kind     Kind
	Tag      string           // Element tag name (e.g. "div")
	Attrs    []Attribute[Msg] // Ordered attributes
	Children []*Html[Msg]     // Ordered child nodes
	Text     string           // For KindText
}

// El creates an element node.
func El[Msg any](tag string, attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return &Html[Msg]{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// Text creates a text node.
func Text[Msg any](value string) *Html[Msg] {
	return &Html[Msg]{
		Kind: KindText,
		Text: value,
	}
}

// Textf creates a formatted text node.
func Textf[Msg any](format string, args ...any) *Html[Msg] {
	return Text[Msg](fmt.Sprintf(format, args...))
}
