// Package iobit implements the sequential and reverse byte/bit I/O
// contract spec.md §4.A and §5 require: little-endian fixed-width fields,
// unsigned LEB128 varints, MSB-first bit packing, and a reverse cursor the
// rANS decoder spawns at a caller-declared offset to read a payload
// back-to-front.
//
// Shape is grounded on deepteams-webp/internal/bitio and
// mrjoshuak-go-jpeg2000/internal/bio (a small buf/cnt bit-accumulator
// struct pair for reading and writing), adapted to operate over an
// in-memory []byte rather than an io.Reader/io.Writer, since spec.md §5
// requires the rANS decoder to seek to an offset and then read backward —
// a operation only a random-access buffer supports.
//
// Errors:
//
//	ErrShortRead  - a read ran past the end of the buffer (spec.md's ReaderEOF).
//	ErrLEB128Overflow - a varint exceeded 64 bits without terminating.
//	ErrBitWidth   - a bit read/write requested more than 64 bits at once.
package iobit
