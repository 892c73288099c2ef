// Package entropy implements the range-based asymmetric numeral system
// (rANS) and its binary specialisation (rABS) that spec.md §4.B specifies.
// Every rANS stream is coded against a transmitted frequency table; there
// is no tagged-symbol mode with per-value bit-length tags.
//
// The encoder runs forward (symbols pushed in order, state flushed at the
// end into a handful of terminal bytes); the decoder runs backward, over a
// ReverseByteReader spawned at a caller-declared offset, consuming symbols
// in the reverse of encode order — spec.md §5's ordering guarantee. This
// mirrors mrjoshuak-go-jpeg2000/internal/entropy's encoder/decoder struct
// pair shape; the precise state-machine arithmetic (normalisation
// threshold, flush byte-count selection, distribution byte encoding) is
// ported from draco-oxide/src/{encode,decode}/entropy/rans.rs, the
// original this spec was distilled from, since spec.md §4.B leaves some of
// that arithmetic underspecified relative to the original.
//
// TableCache memoizes the (slot table, per-symbol freq/cumulative) pair
// built from a given frequency table, guarded by sync.RWMutex in
// lvlath/core.Graph's exact locking idiom — the one structure in this
// module a single codec run does not own exclusively, since distribution
// tables are read-mostly and may legitimately be shared/reused across
// concurrent encode/decode calls using the same attribute schema.
//
// Errors:
//
//	ErrInvalidSymbolIndex - write() called with an index >= num symbols.
//	ErrInvalidFreqCount    - all frequencies are zero, or a zero-run in a
//	  distribution table runs past its symbol count. Declared frequencies
//	  are not range-checked against 1<<precision.
//	ErrStateTooLarge       - flush produced a state too large for the
//	  4-byte terminal encoding (should not occur with correct precisions).
//	ErrShortRead           - propagated from iobit on a truncated stream.
package entropy
