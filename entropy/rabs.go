package entropy

import "github.com/dracogo/dracogo/iobit"

// RabsEncoder is the binary specialisation of RansEncoder: a fixed
// two-symbol alphabet parametrised by a single zero-probability
// freqCount0, per spec.md §4.B. Used for the compact per-bit streams
// (start-face interior flags, prediction orientation/flip bits).
type RabsEncoder struct {
	state     uint64
	freq0     uint64
	precision uint
	lRabsBase uint64
	out       *iobit.ByteWriter
}

// NewRabsEncoder returns an encoder with zero-probability freqCount0 out of
// 1<<precision.
func NewRabsEncoder(freqCount0 uint32, precision uint) *RabsEncoder {
	base := LRansBase(precision)
	return &RabsEncoder{
		state:     base,
		freq0:     uint64(freqCount0),
		precision: precision,
		lRabsBase: base,
		out:       iobit.NewByteWriter(0),
	}
}

// Write encodes one bit (0 or 1).
func (e *RabsEncoder) Write(bit uint8) {
	freq1 := (uint64(1) << e.precision) - e.freq0
	var freq uint64
	if bit > 0 {
		freq = freq1
	} else {
		freq = e.freq0
	}
	if e.state >= ((e.lRabsBase>>e.precision)*freq)<<8 {
		e.out.WriteU8(uint8(e.state & 0xFF))
		e.state >>= 8
	}
	q := e.state / freq
	r := e.state % freq
	if bit > 0 {
		e.state = (q << e.precision) + r
	} else {
		e.state = (q << e.precision) + r + freq1
	}
}

// Flush finalises the encoder and returns the complete rABS payload.
func (e *RabsEncoder) Flush() ([]byte, error) {
	e.state -= e.lRabsBase
	switch {
	case e.state < 1<<6:
		e.out.WriteU8(uint8(e.state))
	case e.state < 1<<14:
		e.out.WriteU16(uint16((1 << 14) + e.state))
	case e.state < 1<<22:
		e.out.WriteU24(uint32((2 << 22) + e.state))
	case e.state < 1<<30:
		e.out.WriteU32(uint32((uint64(3) << 30) + e.state))
	default:
		return nil, ErrStateTooLarge
	}
	return e.out.Bytes(), nil
}

// RabsDecoder is the reverse-reading binary rANS decoder.
type RabsDecoder struct {
	state     uint64
	freq0     uint64
	precision uint
	lRabsBase uint64
	reader    *iobit.ReverseByteReader
}

// NewRabsDecoder spawns a decoder reading backward from offset in reader's
// backing buffer, for a stream encoded with zero-probability freqCount0.
func NewRabsDecoder(reader *iobit.ByteReader, offset int, freqCount0 uint32, precision uint) (*RabsDecoder, error) {
	if uint64(freqCount0) >= uint64(1)<<precision {
		return nil, ErrInvalidFreqCount
	}
	rev, err := reader.SpawnReverseReaderAt(offset)
	if err != nil {
		return nil, err
	}
	metadata, err := rev.NextByte()
	if err != nil {
		return nil, err
	}
	flag := metadata >> 6
	var state uint64
	switch flag {
	case 0:
		state = 0
	case 1:
		b, err := rev.NextByte()
		if err != nil {
			return nil, err
		}
		state = uint64(b)
	case 2:
		b, err := rev.ReadU16Back()
		if err != nil {
			return nil, err
		}
		state = uint64(b)
	case 3:
		b, err := rev.ReadU24Back()
		if err != nil {
			return nil, err
		}
		state = uint64(b)
	}
	state |= uint64(metadata&0x3F) << (flag * 8)
	base := LRansBase(precision)
	state += base

	return &RabsDecoder{
		state:     state,
		freq0:     uint64(freqCount0),
		precision: precision,
		lRabsBase: base,
		reader:    rev,
	}, nil
}

// Read decodes and returns the next bit.
func (d *RabsDecoder) Read() (uint8, error) {
	freq1 := (uint64(1) << d.precision) - d.freq0
	if d.state < d.lRabsBase {
		b, err := d.reader.NextByte()
		if err != nil {
			return 0, err
		}
		d.state = (d.state << 8) + uint64(b)
	}
	x := d.state
	q := x >> d.precision
	r := x & ((uint64(1) << d.precision) - 1)
	xn := q * freq1
	if r < freq1 {
		d.state = xn + r
		return 1, nil
	}
	d.state = x - xn - freq1
	return 0, nil
}
