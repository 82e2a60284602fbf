package vdom

// Op is the type of patch operation.
type Op uint8

const (
	OpNone    Op = iota // Trees are identical, nothing to do
	OpReplace           // Replace the target with a freshly rendered node
	OpAdd               // Append a freshly rendered node to the target
	OpRemove            // Detach the target from its parent
	OpUpdate            // Patch children and attributes in place
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpReplace:
		return "Replace"
	case OpAdd:
		return "Add"
	case OpRemove:
		return "Remove"
	case OpUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// Patch describes the minimal mutation needed to transform one live
// node to match a new virtual tree.
type Patch[Msg any] struct {
	Op       Op
	Node     *Html[Msg]      // For OpReplace and OpAdd
	Children []Patch[Msg]    // For OpUpdate, positional
	Attrs    []AttrPatch[Msg] // For OpUpdate, removals before additions
}

// AttrOp is the type of attribute patch operation.
type AttrOp uint8

const (
	AttrAdd    AttrOp = iota // Set the attribute on the target
	AttrRemove               // Clear the attribute from the target
)

// String returns the string representation of the AttrOp.
func (op AttrOp) String() string {
	switch op {
	case AttrAdd:
		return "Add"
	case AttrRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// AttrPatch describes a single attribute mutation. A value change is
// represented as a Remove of the old attribute plus an Add of the new
// one; there is no in-place update operation.
type AttrPatch[Msg any] struct {
	Op   AttrOp
	Attr Attribute[Msg]
}
