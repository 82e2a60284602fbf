package vdom

import (
	"reflect"
	"slices"
)

// AttrKind is the attribute type discriminator.
type AttrKind uint8

const (
	AttrID        AttrKind = iota // id="..."
	AttrClassList                 // class="a b c"
	AttrOnClick                   // click handler carrying a message
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrID:
		return "ID"
	case AttrClassList:
		return "ClassList"
	case AttrOnClick:
		return "OnClick"
	default:
		return "Unknown"
	}
}

// Attribute is a single attribute of an element node. Exactly one of
// the value fields is meaningful, selected by Kind.
type Attribute[Msg any] struct {
	Kind    AttrKind
	Value   string   // For AttrID
	Classes []string // For AttrClassList
	Msg     Msg      // For AttrOnClick
}

// ID creates an identifier attribute.
func ID[Msg any](id string) Attribute[Msg] {
	return Attribute[Msg]{Kind: AttrID, Value: id}
}

// ClassList creates a class attribute from an ordered list of class
// names. When rendered the names are joined with single spaces.
func ClassList[Msg any](classes ...string) Attribute[Msg] {
	return Attribute[Msg]{Kind: AttrClassList, Classes: classes}
}

// OnClick creates a click handler attribute. The message is delivered
// to the application's update function when the element is clicked.
func OnClick[Msg any](msg Msg) Attribute[Msg] {
	return Attribute[Msg]{Kind: AttrOnClick, Msg: msg}
}

// EqualFunc compares two messages for structural equality. The differ
// uses it to decide whether an OnClick attribute changed.
type EqualFunc[Msg any] func(a, b Msg) bool

// Equal is the default message equality: fast paths for common
// comparable types, reflect.DeepEqual for everything else.
func Equal[Msg any](a, b Msg) bool {
	switch av := any(a).(type) {
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case uint8:
		bv, ok := any(b).(uint8)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	case nil:
		return any(b) == nil
	}
	return reflect.DeepEqual(a, b)
}

// attrsEqual compares two attributes structurally, using eq for the
// opaque message payload of handlers.
func attrsEqual[Msg any](eq EqualFunc[Msg], a, b Attribute[Msg]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AttrID:
		return a.Value == b.Value
	case AttrClassList:
		return slices.Equal(a.Classes, b.Classes)
	case AttrOnClick:
		return eq(a.Msg, b.Msg)
	default:
		return false
	}
}
