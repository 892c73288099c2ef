package attrbuf

// MaybeInit pre-allocates n value slots and tracks, via written, which of
// them have been filled in by Set. Finish converts it into a regular
// Buffer once every slot has been written, matching spec.md §4.C's
// "MaybeInit variant... converting to a regular buffer once fully
// populated." Only this package's tests construct one; the root package's
// attribute decoding builds its value slices directly.
type MaybeInit struct {
	kind          ComponentKind
	numComponents int
	stride        int
	data          []byte
	written       []bool
	remaining     int
}

// NewMaybeInit allocates n slots of the given kind/component count, all
// initially unwritten.
func NewMaybeInit(kind ComponentKind, numComponents, n int) *MaybeInit {
	stride := kind.Size() * numComponents
	return &MaybeInit{
		kind:          kind,
		numComponents: numComponents,
		stride:        stride,
		data:          make([]byte, n*stride),
		written:       make([]bool, n),
		remaining:     n,
	}
}

// Len returns the total number of slots (written or not).
func (m *MaybeInit) Len() int { return len(m.written) }

// IsSet reports whether slot idx has been written.
func (m *MaybeInit) IsSet(idx int) bool { return m.written[idx] }

// Set writes vals into slot idx. Writing an already-written slot simply
// overwrites it and does not double-count toward completion.
func (m *MaybeInit) Set(idx int, vals []float64) error {
	if len(vals) != m.numComponents {
		return ErrComponentCountMismatch
	}
	if idx < 0 || idx >= len(m.written) {
		return ErrIndexOutOfRange
	}
	off := idx * m.stride
	compSize := m.kind.Size()
	for c, v := range vals {
		m.kind.encode(m.data[off+c*compSize:off+(c+1)*compSize], v)
	}
	if !m.written[idx] {
		m.written[idx] = true
		m.remaining--
	}
	return nil
}

// Get reads slot idx, which must already be written.
func (m *MaybeInit) Get(idx int) []float64 {
	if !m.written[idx] {
		panic("attrbuf: MaybeInit.Get on unwritten slot")
	}
	off := idx * m.stride
	out := make([]float64, m.numComponents)
	compSize := m.kind.Size()
	for c := 0; c < m.numComponents; c++ {
		out[c] = m.kind.decode(m.data[off+c*compSize : off+(c+1)*compSize])
	}
	return out
}

// Finish converts the MaybeInit buffer to a regular Buffer, or returns
// ErrIncomplete if any slot is still unwritten.
func (m *MaybeInit) Finish() (*Buffer, error) {
	if m.remaining > 0 {
		return nil, ErrIncomplete
	}
	return &Buffer{
		kind:          m.kind,
		numComponents: m.numComponents,
		stride:        m.stride,
		data:          m.data,
		length:        len(m.written),
	}, nil
}
