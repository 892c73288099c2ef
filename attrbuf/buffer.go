package attrbuf

// Buffer is a growable, typed-by-tag byte store for one attribute's unique
// values. Capacity doubles on overflow, matching spec.md §4.C's "push
// doubles capacity when needed". Every value occupies exactly Stride()
// bytes; Stride = kind.Size() * numComponents.
type Buffer struct {
	kind          ComponentKind
	numComponents int
	stride        int
	data          []byte // len(data) == len*stride; cap(data) may exceed it
	length        int    // number of stored values
}

// New returns an empty Buffer for the given component kind and component
// count (1..=4 in practice, per spec.md §3; not enforced here since the
// invariant belongs to the attribute layer that knows the attribute type).
func New(kind ComponentKind, numComponents int) *Buffer {
	return &Buffer{
		kind:          kind,
		numComponents: numComponents,
		stride:        kind.Size() * numComponents,
	}
}

// Kind returns the buffer's component kind.
func (b *Buffer) Kind() ComponentKind { return b.kind }

// NumComponents returns the number of components per value.
func (b *Buffer) NumComponents() int { return b.numComponents }

// Stride returns the number of bytes occupied by one value.
func (b *Buffer) Stride() int { return b.stride }

// Len returns the number of stored values.
func (b *Buffer) Len() int { return b.length }

// Bytes returns the raw byte representation of the whole buffer, valid to
// length()*Stride() bytes. Used for dedup hashing in meshbuilder, where
// the exact on-wire bytes (not the float64 view) are the canonical identity.
func (b *Buffer) Bytes() []byte { return b.data[:b.length*b.stride] }

// RawValue returns the raw byte slice for value idx, valid to compare
// byte-for-byte against another value of the same buffer kind.
func (b *Buffer) RawValue(idx int) []byte {
	off := idx * b.stride
	return b.data[off : off+b.stride]
}

// Get decodes value idx into a freshly allocated []float64 of length
// NumComponents(). Panics if idx is out of range; callers that must not
// panic should check idx < Len() first (this mirrors the original's
// debug_assert-only bounds check; Go has no "debug-only" build so we keep
// the guard but document it as a programmer-error panic, not a recoverable
// error, consistent with lvlath's "panics confined to option constructors"
// policy not applying to raw index plumbing in the hot path).
func (b *Buffer) Get(idx int) []float64 {
	if idx < 0 || idx >= b.length {
		panic("attrbuf: Get index out of range")
	}
	raw := b.RawValue(idx)
	out := make([]float64, b.numComponents)
	compSize := b.kind.Size()
	for c := 0; c < b.numComponents; c++ {
		out[c] = b.kind.decode(raw[c*compSize : (c+1)*compSize])
	}
	return out
}

// Set overwrites value idx with vals, which must have NumComponents()
// elements.
func (b *Buffer) Set(idx int, vals []float64) error {
	if len(vals) != b.numComponents {
		return ErrComponentCountMismatch
	}
	if idx < 0 || idx >= b.length {
		return ErrIndexOutOfRange
	}
	raw := b.RawValue(idx)
	compSize := b.kind.Size()
	for c, v := range vals {
		b.kind.encode(raw[c*compSize:(c+1)*compSize], v)
	}
	return nil
}

// Push appends vals as a new value and returns its index. Doubles capacity
// when the backing array is full, per spec.md §4.C.
func (b *Buffer) Push(vals []float64) (int, error) {
	if len(vals) != b.numComponents {
		return 0, ErrComponentCountMismatch
	}
	b.growFor(1)
	idx := b.length
	b.length++
	raw := b.RawValue(idx)
	compSize := b.kind.Size()
	for c, v := range vals {
		b.kind.encode(raw[c*compSize:(c+1)*compSize], v)
	}
	return idx, nil
}

// PushRaw appends a pre-encoded raw value, which must be exactly Stride()
// bytes. Used when copying bytes directly between buffers (e.g. dedup)
// without a decode/re-encode round-trip.
func (b *Buffer) PushRaw(raw []byte) (int, error) {
	if len(raw) != b.stride {
		return 0, ErrComponentCountMismatch
	}
	b.growFor(1)
	idx := b.length
	b.length++
	copy(b.RawValue(idx), raw)
	return idx, nil
}

func (b *Buffer) growFor(n int) {
	needed := (b.length + n) * b.stride
	if needed <= len(b.data) {
		return
	}
	newCap := len(b.data)
	if newCap == 0 {
		newCap = b.stride * 4
	}
	for newCap < needed {
		newCap *= 2
	}
	grown := make([]byte, newCap)
	copy(grown, b.data)
	b.data = grown
}

// Permute reshuffles values in place: perm[i] is the new position of old
// element i, per spec.md §4.C.
func (b *Buffer) Permute(perm []int) error {
	if len(perm) != b.length {
		return ErrIndexOutOfRange
	}
	out := make([]byte, len(b.data))
	for oldIdx, newIdx := range perm {
		copy(out[newIdx*b.stride:(newIdx+1)*b.stride], b.RawValue(oldIdx))
	}
	b.data = out
	return nil
}

// Remove deletes value i, shifting every later value left by one slot:
// O(n), per spec.md §4.C.
func (b *Buffer) Remove(i int) error {
	if i < 0 || i >= b.length {
		return ErrIndexOutOfRange
	}
	copy(b.data[i*b.stride:], b.data[(i+1)*b.stride:b.length*b.stride])
	b.length--
	return nil
}

// Equal compares raw bytes up to length*stride, per spec.md §4.C.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.kind != other.kind || b.numComponents != other.numComponents || b.length != other.length {
		return false
	}
	a := b.data[:b.length*b.stride]
	o := other.data[:other.length*other.stride]
	if len(a) != len(o) {
		return false
	}
	for i := range a {
		if a[i] != o[i] {
			return false
		}
	}
	return true
}
