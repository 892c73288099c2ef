// Package attrbuf implements the growable, typed-by-tag byte storage used
// for every mesh attribute (positions, normals, texture coordinates,
// colors, ...), replacing the original's raw-pointer arena with a plain
// growable []byte plus encode/decode helpers keyed on a runtime
// ComponentKind tag — per spec.md §9's design note: "Replace with a
// growable byte container plus typed slice views whose invariants
// (stride = component_size * n) are enforced at view creation."
//
// A Buffer owns one contiguous allocation of cap bytes; len counts stored
// values, not bytes. Values are read and written as canonical []float64
// vectors of length num_components; the ComponentKind determines how each
// component is packed into/out of the byte stream (e.g. F32 round-trips
// through math.Float32bits, I16 clamps and sign-extends). This keeps every
// caller — dedup hashing, prediction schemes, entropy coding — working in
// one numeric type while the wire-exact byte layout is still honoured on
// push/get.
//
// A MaybeInit buffer pre-allocates n slots and tracks, in a bitmap kept
// only alongside explicit Set calls, which slots have been written; Finish
// converts it to a regular Buffer once every slot is written, returning
// ErrIncomplete otherwise — mirroring the original's debug-only
// initialised-bitmap MaybeInit variant (spec.md §4.C).
//
// Errors:
//
//	ErrIndexOutOfRange - Set/Remove index >= Len() (Get panics instead).
//	ErrComponentCountMismatch - a vector argument's length != NumComponents().
//	ErrIncomplete       - MaybeInit.Finish called before every slot was set.
//	ErrInvalidComponentKind - an unrecognised ComponentKind tag.
package attrbuf
