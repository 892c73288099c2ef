package quantize

import "errors"

// Sentinel errors for package quantize.
var (
	// ErrComponentCountMismatch indicates a value vector disagrees in length
	// with the quantizer's configured component count.
	ErrComponentCountMismatch = errors.New("quantize: component count mismatch")

	// ErrNoValues indicates Squeeze was called before any value was added.
	ErrNoValues = errors.New("quantize: no values to quantize")

	// ErrInvalidBits indicates quantization_bits fell outside [1,30].
	ErrInvalidBits = errors.New("quantize: invalid quantization bit count")
)
