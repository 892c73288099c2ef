package entropy

import "github.com/dracogo/dracogo/iobit"

// RansEncoder implements the forward rANS symbol coder of spec.md §4.B.
// Symbols are written via Write in the order they occur; Flush finalises
// the stream and returns the encoded bytes.
type RansEncoder struct {
	state     uint64
	precision uint
	lRansBase uint64
	symbols   []Symbol
	out       *iobit.ByteWriter
}

// NewRansEncoder returns an encoder for the given (unnormalised)
// freqCounts at the given precision, using the shared default TableCache.
func NewRansEncoder(freqCounts []uint64, precision uint) (*RansEncoder, error) {
	return NewRansEncoderWithCache(defaultCache, freqCounts, precision)
}

// NewRansEncoderWithCache is NewRansEncoder with an explicit TableCache.
func NewRansEncoderWithCache(cache *TableCache, freqCounts []uint64, precision uint) (*RansEncoder, error) {
	_, symbols, err := cache.resolve(freqCounts, precision)
	if err != nil {
		return nil, err
	}
	base := LRansBase(precision)
	return &RansEncoder{
		state:     base,
		precision: precision,
		lRansBase: base,
		symbols:   symbols,
		out:       iobit.NewByteWriter(0),
	}, nil
}

// Write encodes one occurrence of the symbol at idx, per spec.md §4.B's
// encoder state machine.
func (e *RansEncoder) Write(idx int) error {
	if idx < 0 || idx >= len(e.symbols) {
		return ErrInvalidSymbolIndex
	}
	sym := e.symbols[idx]
	if sym.FreqCount == 0 {
		return ErrInvalidSymbolIndex
	}
	freq := uint64(sym.FreqCount)
	for e.state >= ((e.lRansBase>>e.precision)*freq)<<8 {
		e.out.WriteU8(uint8(e.state & 0xFF))
		e.state >>= 8
	}
	e.state = (e.state/freq)<<e.precision + e.state%freq + uint64(sym.FreqCumulative)
	return nil
}

// Flush finalises the encoder and returns the complete rANS payload,
// including its terminal state bytes, per spec.md §4.B's flush algorithm.
func (e *RansEncoder) Flush() ([]byte, error) {
	e.state -= e.lRansBase
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

// RansDecoder implements the reverse rANS symbol coder of spec.md §4.B: it
// reads a payload back-to-front, starting from a forward ByteReader
// positioned just past the payload's end.
type RansDecoder struct {
	state     uint64
	precision uint
	lRansBase uint64
	slotTable []uint32
	symbols   []Symbol
	reader    *iobit.ReverseByteReader
}

// NewRansDecoder spawns a decoder reading backward from offset in reader's
// backing buffer, for a stream encoded against freqCounts at precision.
func NewRansDecoder(reader *iobit.ByteReader, offset int, freqCounts []uint64, precision uint) (*RansDecoder, error) {
	return NewRansDecoderWithCache(defaultCache, reader, offset, freqCounts, precision)
}

// NewRansDecoderWithCache is NewRansDecoder with an explicit TableCache.
func NewRansDecoderWithCache(cache *TableCache, reader *iobit.ByteReader, offset int, freqCounts []uint64, precision uint) (*RansDecoder, error) {
	slotTable, symbols, err := cache.resolve(freqCounts, precision)
	if err != nil {
		return nil, err
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

	return &RansDecoder{
		state:     state,
		precision: precision,
		lRansBase: base,
		slotTable: slotTable,
		symbols:   symbols,
		reader:    rev,
	}, nil
}

// Read decodes and returns the next symbol index, consuming the stream in
// the reverse of its encode order, per spec.md §4.B.
func (d *RansDecoder) Read() (int, error) {
	for d.state < d.lRansBase {
		b, err := d.reader.NextByte()
		if err != nil {
			return 0, err
		}
		d.state = d.state*256 + uint64(b)
	}
	q := d.state >> d.precision
	r := d.state & ((uint64(1) << d.precision) - 1)
	symIdx := d.slotTable[r]
	sym := d.symbols[symIdx]
	d.state = q*uint64(sym.FreqCount) + r - uint64(sym.FreqCumulative)
	return int(symIdx), nil
}
