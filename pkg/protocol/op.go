package protocol

import "errors"

// OpCode identifies one DOM operation.
type OpCode uint8

const (
	OpCreateElement OpCode = 0x01 // Ref, Name (tag)
	OpCreateText    OpCode = 0x02 // Ref, Value (text)
	OpSetAttr       OpCode = 0x03 // Ref, Name, Value
	OpRemoveAttr    OpCode = 0x04 // Ref, Name
	OpAppend        OpCode = 0x05 // Ref (parent), Ref2 (child)
	OpReplace       OpCode = 0x06 // Ref (old), Ref2 (new)
	OpRemove        OpCode = 0x07 // Ref
	OpBind          OpCode = 0x08 // Ref, Sym, Name (event)
	OpUnbind        OpCode = 0x09 // Ref, Name (event)
	OpMount         OpCode = 0x0A // Ref, Name (container DOM id)
)

// String returns the string representation of the OpCode.
func (c OpCode) String() string {
	switch c {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpAppend:
		return "Append"
	case OpReplace:
		return "Replace"
	case OpRemove:
		return "Remove"
	case OpBind:
		return "Bind"
	case OpUnbind:
		return "Unbind"
	case OpMount:
		return "Mount"
	default:
		return "Unknown"
	}
}

// ErrInvalidOpCode reports an op byte outside the known range.
var ErrInvalidOpCode = errors.New("protocol: invalid op code")

// MaxOpsPerFrame caps the op count a frame may declare.
const MaxOpsPerFrame = 65536

// ErrTooManyOps reports an op count above MaxOpsPerFrame.
var ErrTooManyOps = errors.New("protocol: op count exceeds limit")

// Op is one DOM operation. Nodes are addressed by server-assigned
// refs; the client maintains the ref → live node mapping.
type Op struct {
	Code  OpCode
	Ref   uint64 // Primary node ref
	Ref2  uint64 // Secondary node ref (Append, Replace)
	Sym   uint64 // Dispatch symbol (Bind)
	Name  string // Tag, attribute or event name, container id
	Value string // Attribute value or text content
}

// EncodeOps encodes a batch of ops: a uvarint count, then each op.
func EncodeOps(ops []Op) []byte {
	enc := NewEncoder()
	enc.WriteUvarint(uint64(len(ops)))
	for i := range ops {
		encodeOp(enc, &ops[i])
	}
	return enc.Bytes()
}

// EncodeOpsBounded encodes the longest prefix of ops whose payload
// fits in maxBytes and returns it with the unencoded remainder, so a
// large batch can span several frames. A first op that does not fit on
// its own is unrepresentable and returns ErrFrameTooLarge.
func EncodeOpsBounded(ops []Op, maxBytes int) ([]byte, []Op, error) {
	scratch := NewEncoder()
	var encoded [][]byte
	total := 0
	n := 0
	for i := range ops {
		scratch.Reset()
		encodeOp(scratch, &ops[i])
		b := append([]byte(nil), scratch.Bytes()...)
		if uvarintLen(uint64(n+1))+total+len(b) > maxBytes {
			break
		}
		encoded = append(encoded, b)
		total += len(b)
		n++
	}
	if n == 0 {
		if len(ops) == 0 {
			return EncodeOps(nil), nil, nil
		}
		return nil, ops, ErrFrameTooLarge
	}

	enc := NewEncoder()
	enc.WriteUvarint(uint64(n))
	for _, b := range encoded {
		enc.WriteBytes(b)
	}
	return enc.Bytes(), ops[n:], nil
}

// uvarintLen returns the encoded size of v.
func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

func encodeOp(enc *Encoder, op *Op) {
	enc.WriteByte(byte(op.Code))
	switch op.Code {
	case OpCreateElement:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Name)
	case OpCreateText:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Value)
	case OpSetAttr:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Name)
		enc.WriteString(op.Value)
	case OpRemoveAttr:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Name)
	case OpAppend, OpReplace:
		enc.WriteUvarint(op.Ref)
		enc.WriteUvarint(op.Ref2)
	case OpRemove:
		enc.WriteUvarint(op.Ref)
	case OpBind:
		enc.WriteUvarint(op.Ref)
		enc.WriteUvarint(op.Sym)
		enc.WriteString(op.Name)
	case OpUnbind:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Name)
	case OpMount:
		enc.WriteUvarint(op.Ref)
		enc.WriteString(op.Name)
	}
}

// DecodeOps decodes a batch of ops.
func DecodeOps(data []byte) ([]Op, error) {
	d := NewDecoder(data)

	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > MaxOpsPerFrame {
		return nil, ErrTooManyOps
	}

	ops := make([]Op, 0, count)
	for i := uint64(0); i < count; i++ {
		op, err := decodeOp(d)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func decodeOp(d *Decoder) (Op, error) {
	var op Op

	code, err := d.ReadByte()
	if err != nil {
		return op, err
	}
	op.Code = OpCode(code)

	switch op.Code {
	case OpCreateElement, OpCreateText, OpRemoveAttr, OpUnbind, OpMount:
		if op.Ref, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		s, err := d.ReadString()
		if err != nil {
			return op, err
		}
		if op.Code == OpCreateText {
			op.Value = s
		} else {
			op.Name = s
		}

	case OpSetAttr:
		if op.Ref, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		if op.Name, err = d.ReadString(); err != nil {
			return op, err
		}
		if op.Value, err = d.ReadString(); err != nil {
			return op, err
		}

	case OpAppend, OpReplace:
		if op.Ref, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		if op.Ref2, err = d.ReadUvarint(); err != nil {
			return op, err
		}

	case OpRemove:
		if op.Ref, err = d.ReadUvarint(); err != nil {
			return op, err
		}

	case OpBind:
		if op.Ref, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		if op.Sym, err = d.ReadUvarint(); err != nil {
			return op, err
		}
		if op.Name, err = d.ReadString(); err != nil {
			return op, err
		}

	default:
		return op, ErrInvalidOpCode
	}
	return op, nil
}
