package protocol

// Event is a client → server notification that a bound handler fired.
// Ref names the node whose binding fired; the server resolves the
// registered payload from its mirror, so no application value is ever
// serialized.
type Event struct {
	Seq  uint64 // Client-assigned sequence number
	Sym  uint64 // Dispatch symbol from the Bind op
	Ref  uint64 // Node whose handler fired
	Name string // Native event name, e.g. "onclick"
}

// EncodeEvent encodes an event to bytes.
func EncodeEvent(e *Event) []byte {
	enc := NewEncoder()
	enc.WriteUvarint(e.Seq)
	enc.WriteUvarint(e.Sym)
	enc.WriteUvarint(e.Ref)
	enc.WriteString(e.Name)
	return enc.Bytes()
}

// DecodeEvent decodes an event from bytes.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	sym, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	ref, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	name, err := d.ReadString()
	if err != nil {
		return nil, err
	}

	return &Event{Seq: seq, Sym: sym, Ref: ref, Name: name}, nil
}

// Hello is the connection setup frame payload.
type Hello struct {
	Version   uint8  // Protocol version, currently 1
	Container string // DOM id of the mount container
}

// Version is the current protocol version.
const Version = 1

// EncodeHello encodes a hello payload.
func EncodeHello(h *Hello) []byte {
	enc := NewEncoder()
	enc.WriteByte(h.Version)
	enc.WriteString(h.Container)
	return enc.Bytes()
}

// DecodeHello decodes a hello payload.
func DecodeHello(data []byte) (*Hello, error) {
	d := NewDecoder(data)

	v, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	container, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	return &Hello{Version: v, Container: container}, nil
}
