package entropy

import "github.com/dracogo/dracogo/iobit"

// RansSymbolEncoder wraps RansEncoder with the spec.md §4.B distribution
// table wire format: the decoder cannot resolve symbols without first
// reading the table the encoder derived from the caller's observed
// frequencies, so this type bundles "compute freqCounts -> write table ->
// write symbol payload" into the single entry point callers actually use.
type RansSymbolEncoder struct {
	precision  uint
	freqCounts []uint64
	symbolIdx  []int
}

// NewRansSymbolEncoder starts a fresh symbol stream for an alphabet of
// numSymbols distinct classes.
func NewRansSymbolEncoder(numSymbols int, precision uint) *RansSymbolEncoder {
	return &RansSymbolEncoder{
		precision:  precision,
		freqCounts: make([]uint64, numSymbols),
	}
}

// Write records one occurrence of symbol idx, to be entropy-coded once
// Finish tallies the full stream's frequencies.
func (e *RansSymbolEncoder) Write(idx int) error {
	if idx < 0 || idx >= len(e.freqCounts) {
		return ErrInvalidSymbolIndex
	}
	e.freqCounts[idx]++
	e.symbolIdx = append(e.symbolIdx, idx)
	return nil
}

// Finish encodes the full distribution table followed by the rANS payload,
// per spec.md §4.B: LEB128 symbol count, the tagged per-symbol frequency
// table, then a LEB128 payload length and the payload itself.
func (e *RansSymbolEncoder) Finish() ([]byte, error) {
	enc, err := NewRansEncoder(e.freqCounts, e.precision)
	if err != nil {
		return nil, err
	}
	// rANS decodes in reverse order of encoding, so symbols must be fed to
	// the encoder back-to-front for the decoder to read them out forward.
	for i := len(e.symbolIdx) - 1; i >= 0; i-- {
		if err := enc.Write(e.symbolIdx[i]); err != nil {
			return nil, err
		}
	}
	payload, err := enc.Flush()
	if err != nil {
		return nil, err
	}
	_, symbols, err := defaultCache.resolve(e.freqCounts, e.precision)
	if err != nil {
		return nil, err
	}
	normalised := make([]uint64, len(symbols))
	for i, s := range symbols {
		normalised[i] = uint64(s.FreqCount)
	}

	out := iobit.NewByteWriter(len(payload) + len(e.freqCounts) + 16)
	out.WriteLEB128(uint64(len(e.freqCounts)))
	writeDistributionTable(out, normalised)
	out.WriteLEB128(uint64(len(payload)))
	out.WriteBytes(payload)
	return out.Bytes(), nil
}

// writeDistributionTable appends the tagged per-symbol frequency encoding
// of spec.md §4.B: a run of zero-frequency symbols is recorded as a single
// byte whose top 6 bits hold the run length (b&3==3 marks "this byte is a
// zero-run, not a frequency"); a nonzero frequency is recorded as 1-3
// bytes depending on magnitude, with the low 2 bits of the first byte
// giving the count of additional bytes that follow.
func writeDistributionTable(out *iobit.ByteWriter, freqCounts []uint64) {
	n := len(freqCounts)
	i := 0
	for i < n {
		if freqCounts[i] == 0 {
			run := 0
			for i+run < n && freqCounts[i+run] == 0 && run < 63 {
				run++
			}
			out.WriteU8(uint8(run<<2) | 3)
			i += run
			continue
		}
		v := freqCounts[i]
		switch {
		case v < 1<<6:
			out.WriteU8(uint8(v << 2))
		case v < 1<<14:
			out.WriteU16(uint16(v<<2) | 1)
		case v < 1<<22:
			out.WriteU24(uint32(v<<2) | 2)
		default:
			// unreachable: precision is bounded at MaxPrecision=20, so a
			// normalised frequency never reaches 1<<22.
			return
		}
		i++
	}
}

// readDistributionTable is the inverse of writeDistributionTable, reading
// exactly numSymbols entries (expanding zero-runs) from in.
func readDistributionTable(in *iobit.ByteReader, numSymbols int) ([]uint64, error) {
	freqCounts := make([]uint64, numSymbols)
	i := 0
	for i < numSymbols {
		b0, err := in.ReadU8()
		if err != nil {
			return nil, err
		}
		tag := b0 & 3
		if tag == 3 {
			run := int(b0 >> 2)
			if i+run > numSymbols {
				return nil, ErrInvalidFreqCount
			}
			i += run
			continue
		}
		switch tag {
		case 0:
			freqCounts[i] = uint64(b0 >> 2)
		case 1:
			b1, err := in.ReadU8()
			if err != nil {
				return nil, err
			}
			freqCounts[i] = uint64(b0>>2) | uint64(b1)<<6
		case 2:
			b1, err := in.ReadU8()
			if err != nil {
				return nil, err
			}
			b2, err := in.ReadU8()
			if err != nil {
				return nil, err
			}
			freqCounts[i] = uint64(b0>>2) | uint64(b1)<<6 | uint64(b2)<<14
		}
		i++
	}
	return freqCounts, nil
}

// RansSymbolDecoder is the read-side counterpart of RansSymbolEncoder: it
// parses the distribution table and payload framing written by Finish,
// then exposes the same per-symbol Read as RansDecoder.
type RansSymbolDecoder struct {
	dec *RansDecoder
}

// NewRansSymbolDecoder parses the wire block written by
// RansSymbolEncoder.Finish starting at in's current position, and returns
// a decoder ready to Read numSymbols-alphabet values back in original
// order.
func NewRansSymbolDecoder(in *iobit.ByteReader, precision uint) (*RansSymbolDecoder, error) {
	numSymbols, err := in.ReadLEB128()
	if err != nil {
		return nil, err
	}
	freqCounts, err := readDistributionTable(in, int(numSymbols))
	if err != nil {
		return nil, err
	}
	payloadLen, err := in.ReadLEB128()
	if err != nil {
		return nil, err
	}
	payloadStart := in.Pos()
	if err := in.Seek(payloadStart + int(payloadLen)); err != nil {
		return nil, err
	}
	dec, err := NewRansDecoder(in, in.Pos(), freqCounts, precision)
	if err != nil {
		return nil, err
	}
	return &RansSymbolDecoder{dec: dec}, nil
}

// Read decodes and returns the next symbol index, in original encode order.
func (d *RansSymbolDecoder) Read() (int, error) {
	return d.dec.Read()
}
