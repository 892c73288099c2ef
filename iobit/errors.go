package iobit

import "errors"

// Sentinel errors for package iobit.
var (
	// ErrShortRead indicates a read requested more bytes/bits than remain
	// in the buffer — realizes spec.md §7's ReaderEOF.
	ErrShortRead = errors.New("iobit: short read")

	// ErrLEB128Overflow indicates an unsigned varint did not terminate
	// within 10 continuation bytes (the max for a 64-bit value).
	ErrLEB128Overflow = errors.New("iobit: leb128 varint overflow")

	// ErrBitWidth indicates a bit read/write requested a width outside 1..64.
	ErrBitWidth = errors.New("iobit: invalid bit width")
)
