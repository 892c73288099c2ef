package predtransform

import "github.com/dracogo/dracogo/iobit"

// Kind identifies which prediction transform maps (orig, pred) pairs to
// portable corrections, per spec.md §4.H.
type Kind uint8

const (
	NoTransformKind       Kind = 0
	DifferenceKind        Kind = 1
	WrappedDifferenceKind Kind = 2
	InvalidTransformKind  Kind = 0xFF
)

// ZigZag maps a signed correction to a non-negative integer: negative
// values become odd, non-negative values become even, so small magnitudes
// (the common case for a good prediction) always produce small codes —
// spec.md §4.H's "zigzag(x) = x<0 ? (-2x-1) : (2x)".
func ZigZag(x int32) uint32 {
	if x < 0 {
		return uint32(-2*int64(x) - 1)
	}
	return uint32(2 * int64(x))
}

// UnZigZag inverts ZigZag.
func UnZigZag(u uint32) int32 {
	if u&1 == 1 {
		return int32(-(int64(u) + 1) / 2)
	}
	return int32(u / 2)
}

// Encoder accumulates (orig, pred) pairs for one attribute's correction
// stream and produces the non-negative correction vectors plus any
// transform metadata, per spec.md §4.H. NoTransform and Difference encode
// each value as it arrives; WrappedDifference must see every orig value
// before it knows the shared [min,max] range, so it buffers until Squeeze.
type Encoder struct {
	kind          Kind
	numComponents int
	origs         [][]int32
	preds         [][]int32
	out           [][]uint32
	min, max      int32
}

// NewEncoder returns an Encoder for the given transform kind and component
// count.
func NewEncoder(kind Kind, numComponents int) *Encoder {
	return &Encoder{
		kind:          kind,
		numComponents: numComponents,
		min:           int32(1) << 30,
		max:           -(int32(1) << 30),
	}
}

// Map records one (orig, pred) pair. For NoTransform and Difference the
// correction is computed immediately; for WrappedDifference the pair is
// buffered and the [min,max] range is extended.
func (e *Encoder) Map(orig, pred []int32) error {
	if len(orig) != e.numComponents || len(pred) != e.numComponents {
		return ErrComponentCountMismatch
	}
	switch e.kind {
	case NoTransformKind:
		corr := make([]uint32, e.numComponents)
		for i, v := range orig {
			corr[i] = uint32(v)
		}
		e.out = append(e.out, corr)
	case DifferenceKind:
		corr := make([]uint32, e.numComponents)
		for i := range orig {
			corr[i] = ZigZag(orig[i] - pred[i])
		}
		e.out = append(e.out, corr)
	case WrappedDifferenceKind:
		for _, v := range orig {
			if v < e.min {
				e.min = v
			}
			if v > e.max {
				e.max = v
			}
		}
		o := append([]int32(nil), orig...)
		p := append([]int32(nil), pred...)
		e.origs = append(e.origs, o)
		e.preds = append(e.preds, p)
	}
	return nil
}

// wrapParams returns (maxDiff, maxCorr, minCorr) for the Encoder's observed
// [min,max] range, per spec.md §4.H's WrappedDifference modulus derivation.
func wrapParams(min, max int32) (maxDiff, maxCorr, minCorr int32) {
	diff := max - min
	maxDiff = diff + 1
	maxCorr = maxDiff / 2
	if maxDiff&1 == 0 {
		maxCorr--
	}
	minCorr = -maxCorr
	return
}

// Squeeze finalises the transform: it computes every correction vector (for
// WrappedDifference, only now that min/max are known) and writes any
// transform metadata to w (WrappedDifference's [min,max] pair; nothing for
// the other two kinds).
func (e *Encoder) Squeeze(w *iobit.ByteWriter) [][]uint32 {
	if e.kind != WrappedDifferenceKind {
		return e.out
	}
	if len(e.origs) == 0 {
		// No values observed: emit a degenerate zero range so Decoder.New
		// is never asked to divide by a meaningless maxDiff.
		e.min, e.max = 0, 0
	}
	maxDiff, maxCorr, minCorr := wrapParams(e.min, e.max)
	out := make([][]uint32, len(e.origs))
	for i := range e.origs {
		corr := make([]uint32, e.numComponents)
		for c := 0; c < e.numComponents; c++ {
			pred := clamp32(e.preds[i][c], e.min, e.max)
			val := e.origs[i][c] - pred
			switch {
			case val > maxCorr:
				val -= maxDiff
			case val < minCorr:
				val += maxDiff
			}
			corr[c] = ZigZag(val)
		}
		out[i] = corr
	}
	w.WriteU32(uint32(e.min))
	w.WriteU32(uint32(e.max))
	return out
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Decoder is the read-side counterpart of Encoder: given the transform's
// metadata (already read from the wire) and a stream of (pred, correction)
// pairs in decode order, it reconstructs orig one value at a time — the
// lock-step requirement of spec.md §5 ("attribute prediction for vertex v
// must observe every attribute value for every vertex emitted strictly
// before v"), since WrappedDifference's [min,max] is read once upfront but
// Difference has no metadata to read at all.
type Decoder struct {
	kind          Kind
	numComponents int
	min, max      int32
}

// NewDecoder constructs a Decoder for kind, reading any metadata kind
// requires from r.
func NewDecoder(r *iobit.ByteReader, kind Kind, numComponents int) (*Decoder, error) {
	d := &Decoder{kind: kind, numComponents: numComponents}
	if kind == WrappedDifferenceKind {
		minBits, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		maxBits, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		d.min = int32(minBits)
		d.max = int32(maxBits)
	}
	return d, nil
}

// InverseMap reconstructs orig from pred and the decoded correction vector.
func (d *Decoder) InverseMap(pred []int32, corr []uint32) ([]int32, error) {
	if len(pred) != d.numComponents || len(corr) != d.numComponents {
		return nil, ErrComponentCountMismatch
	}
	orig := make([]int32, d.numComponents)
	switch d.kind {
	case NoTransformKind:
		for i, c := range corr {
			orig[i] = int32(c)
		}
	case DifferenceKind:
		for i, c := range corr {
			orig[i] = pred[i] + UnZigZag(c)
		}
	case WrappedDifferenceKind:
		maxDiff, _, _ := wrapParams(d.min, d.max)
		for i, c := range corr {
			p := clamp32(pred[i], d.min, d.max)
			v := p + UnZigZag(c)
			switch {
			case v > d.max:
				v -= maxDiff
			case v < d.min:
				v += maxDiff
			}
			orig[i] = v
		}
	}
	return orig, nil
}
