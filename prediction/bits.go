package prediction

import (
	"github.com/dracogo/dracogo/entropy"
	"github.com/dracogo/dracogo/iobit"
)

// bitsPrecision is the rABS precision used for every per-scheme metadata
// bit vector (orientation bits, normal flip bits): spec.md §4.B's base
// rANS precision of 12, same value entropy.TableCache defaults to
// elsewhere in the pipeline.
const bitsPrecision = 12

// zeroProbability derives the learned zero-probability byte RabsEncoder
// needs from an observed bit vector, per draco-oxide's
// encode_prediction_metadtata (mesh_normal_prediction.rs,
// mesh_prediction_for_texture_coordinates.rs): the empirical frequency of
// zero bits, scaled into (0,256) and clamped away from the degenerate ends.
func zeroProbability(bits []bool) uint8 {
	if len(bits) == 0 {
		return 128
	}
	zeros := 0
	for _, b := range bits {
		if !b {
			zeros++
		}
	}
	p := int((float64(zeros)/float64(len(bits)))*256 + 0.5)
	if p < 1 {
		p = 1
	}
	if p > 255 {
		p = 255
	}
	return uint8(p)
}

// encodeBits RABS-codes bits (false=0, true=1) and appends the
// self-describing metadata block (zero-probability byte, LEB128 payload
// length, payload) to w.
func encodeBits(w *iobit.ByteWriter, bits []bool) error {
	zp := zeroProbability(bits)
	w.WriteU8(zp)
	enc := entropy.NewRabsEncoder(uint32(zp), bitsPrecision)
	// rABS decodes in reverse of encoding order (the reverse-reader
	// convention shared by every entropy-coded stream in this pipeline), so
	// bits are fed back-to-front for the decoder to read out forward.
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] {
			enc.Write(1)
		} else {
			enc.Write(0)
		}
	}
	payload, err := enc.Flush()
	if err != nil {
		return err
	}
	w.WriteLEB128(uint64(len(payload)))
	w.WriteBytes(payload)
	return nil
}

// decodeBits inverts encodeBits, reading exactly n bits from r.
func decodeBits(r *iobit.ByteReader, n int) ([]bool, error) {
	zp, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	payloadLen, err := r.ReadLEB128()
	if err != nil {
		return nil, err
	}
	payloadStart := r.Pos()
	if err := r.Seek(payloadStart + int(payloadLen)); err != nil {
		return nil, err
	}
	dec, err := entropy.NewRabsDecoder(r, r.Pos(), uint32(zp), bitsPrecision)
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		bit, err := dec.Read()
		if err != nil {
			return nil, err
		}
		out[i] = bit != 0
	}
	return out, nil
}
