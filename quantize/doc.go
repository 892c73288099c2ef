// Package quantize implements the portabilization stage of spec.md §4.I:
// converting float attribute values to bounded non-negative integers, and
// inverting that mapping on decode.
//
// Grounded on draco-rs's
// encode/attribute/portabilization/quantization_coordinate_wise.rs: a
// per-component minimum vector is computed, a single delta_max (the
// maximum of the per-component ranges) is shared across all components,
// and quantization_bits (default 11) sizes the integer codomain. Integer
// attributes bypass this stage entirely (spec.md §4.I, last sentence) and
// never reach this package.
//
// Errors:
//
//	ErrComponentCountMismatch - a value vector disagrees in length with the configured component count.
//	ErrNoValues - Squeeze was called before any value was added.
//	ErrInvalidBits - quantization_bits is outside [1,30].
package quantize
