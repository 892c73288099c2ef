package wireformat

import (
	"github.com/dracogo/dracogo/iobit"
)

// magic is the 5-byte frame tag spec.md §6 requires at the start of every
// stream.
var magic = [5]byte{'D', 'R', 'A', 'C', 'O'}

// Version is the only frame version this package writes and accepts.
const Version uint16 = 1

// EncoderType identifies what kind of geometry a frame carries. This
// package only ever produces EncoderTypeMesh, but the byte is reserved by
// spec.md §6 for future point-cloud support.
type EncoderType uint8

// EncoderTypeMesh is the only encoder type this package emits.
const EncoderTypeMesh EncoderType = 1

// ConnMethod selects how the connectivity section is laid out.
type ConnMethod uint8

const (
	// ConnMethodEdgebreaker carries an Edgebreaker CLERS stream, decoded by
	// Spirale Reversi — the compressed, topology-aware path of spec.md §4.E/F.
	ConnMethodEdgebreaker ConnMethod = 0

	// ConnMethodSequential carries a plain triangle list with no
	// connectivity compression, per SPEC_FULL.md's supplemented fallback
	// for meshes Edgebreaker cannot encode (e.g. non-manifold geometry
	// cornertable.Build rejects).
	ConnMethodSequential ConnMethod = 1
)

// Valid reports whether m is one of the two recognised connectivity
// methods.
func (m ConnMethod) Valid() bool { return m == ConnMethodEdgebreaker || m == ConnMethodSequential }

// Header is the frame's fixed-size leading section: 5-byte magic, uint16
// version, uint8 encoder type, uint8 connectivity method, uint16 flags.
// Flags is reserved (always 0 on write); readers must not reject an
// unrecognised nonzero flags value, only ignore bits they don't understand.
type Header struct {
	EncoderType EncoderType
	Method      ConnMethod
	Flags       uint16
}

// WriteHeader appends h to w.
func WriteHeader(w *iobit.ByteWriter, h Header) {
	w.WriteBytes(magic[:])
	w.WriteU16(Version)
	w.WriteU8(uint8(h.EncoderType))
	w.WriteU8(uint8(h.Method))
	w.WriteU16(h.Flags)
}

// ReadHeader reads and validates a Header from r.
func ReadHeader(r *iobit.ByteReader) (Header, error) {
	got, err := r.ReadBytes(5)
	if err != nil {
		return Header{}, wrapf("ReadHeader", err)
	}
	for i := range magic {
		if got[i] != magic[i] {
			return Header{}, wrapf("ReadHeader", ErrBadMagic)
		}
	}
	version, err := r.ReadU16()
	if err != nil {
		return Header{}, wrapf("ReadHeader", err)
	}
	if version != Version {
		return Header{}, wrapf("ReadHeader", ErrUnsupportedVersion)
	}
	encType, err := r.ReadU8()
	if err != nil {
		return Header{}, wrapf("ReadHeader", err)
	}
	method, err := r.ReadU8()
	if err != nil {
		return Header{}, wrapf("ReadHeader", err)
	}
	if !ConnMethod(method).Valid() {
		return Header{}, wrapf("ReadHeader", ErrInvalidConnMethod)
	}
	flags, err := r.ReadU16()
	if err != nil {
		return Header{}, wrapf("ReadHeader", err)
	}
	return Header{EncoderType: EncoderType(encType), Method: ConnMethod(method), Flags: flags}, nil
}
