package quantize

import (
	"math"

	"github.com/dracogo/dracogo/iobit"
)

// DefaultBits is the quantization_bits default named by spec.md §4.I.
const DefaultBits = 11

// Encoder accumulates float attribute values for one attribute and
// quantizes them to bounded non-negative integers once every value has
// been seen, per spec.md §4.I. It mirrors predtransform's
// buffer-then-Squeeze shape: the shared delta_max cannot be known until
// every value's per-component range has been observed.
type Encoder struct {
	numComponents int
	bits          int
	values        [][]float32
}

// NewEncoder returns an Encoder for numComponents-wide float vectors,
// quantizing to bits-wide non-negative integers.
func NewEncoder(numComponents, bits int) (*Encoder, error) {
	if bits < 1 || bits > 30 {
		return nil, ErrInvalidBits
	}
	return &Encoder{numComponents: numComponents, bits: bits}, nil
}

// Add records one attribute value.
func (e *Encoder) Add(v []float32) error {
	if len(v) != e.numComponents {
		return ErrComponentCountMismatch
	}
	e.values = append(e.values, append([]float32(nil), v...))
	return nil
}

// Squeeze computes the per-component minimum, the shared delta_max, writes
// the quantization metadata (min vector, delta_max, quantization_bits) to
// w, and returns every value's quantized integer vector in the order
// values were Added.
func (e *Encoder) Squeeze(w *iobit.ByteWriter) ([][]int32, error) {
	if len(e.values) == 0 {
		return nil, ErrNoValues
	}
	n := e.numComponents
	min := make([]float32, n)
	max := make([]float32, n)
	for i := range min {
		min[i] = e.values[0][i]
		max[i] = e.values[0][i]
	}
	for _, v := range e.values[1:] {
		for i := 0; i < n; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	var deltaMax float32
	for i := 0; i < n; i++ {
		d := max[i] - min[i]
		if d > deltaMax {
			deltaMax = d
		}
	}

	for i := 0; i < n; i++ {
		w.WriteU32(math.Float32bits(min[i]))
	}
	w.WriteU32(math.Float32bits(deltaMax))
	w.WriteU8(uint8(e.bits))

	scale := float32((uint32(1) << uint(e.bits)) - 1)
	out := make([][]int32, len(e.values))
	for vi, v := range e.values {
		q := make([]int32, n)
		for i := 0; i < n; i++ {
			if deltaMax == 0 {
				q[i] = 0
				continue
			}
			normalized := (v[i] - min[i]) / deltaMax
			q[i] = int32(math.Round(float64(normalized * scale)))
		}
		out[vi] = q
	}
	return out, nil
}

// Decoder reconstructs float values from quantized integers and the
// metadata an Encoder wrote.
type Decoder struct {
	numComponents int
	bits          int
	min           []float32
	deltaMax      float32
}

// NewDecoder reads quantization metadata from r for a numComponents-wide
// attribute.
func NewDecoder(r *iobit.ByteReader, numComponents int) (*Decoder, error) {
	min := make([]float32, numComponents)
	for i := 0; i < numComponents; i++ {
		bits, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		min[i] = math.Float32frombits(bits)
	}
	deltaBits, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	bits, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &Decoder{
		numComponents: numComponents,
		bits:          int(bits),
		min:           min,
		deltaMax:      math.Float32frombits(deltaBits),
	}, nil
}

// Dequantize inverts Encoder's mapping for one quantized vector.
func (d *Decoder) Dequantize(q []int32) ([]float32, error) {
	if len(q) != d.numComponents {
		return nil, ErrComponentCountMismatch
	}
	scale := float32((uint32(1) << uint(d.bits)) - 1)
	out := make([]float32, d.numComponents)
	for i, c := range q {
		if d.deltaMax == 0 {
			out[i] = d.min[i]
			continue
		}
		out[i] = d.min[i] + float32(c)/scale*d.deltaMax
	}
	return out, nil
}
