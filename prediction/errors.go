package prediction

import "errors"

// Sentinel errors for package prediction.
var (
	// ErrNoPosition indicates a scheme that needs decoded Position values
	// (TexCoord, Normal, Derivative) was not supplied a position lookup.
	ErrNoPosition = errors.New("prediction: scheme requires a position lookup")

	// ErrComponentCount indicates a vector passed to a scheme disagreed with
	// its configured component count.
	ErrComponentCount = errors.New("prediction: component count mismatch")
)
