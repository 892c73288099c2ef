package predtransform

import "errors"

// Sentinel errors for package predtransform.
var (
	// ErrComponentCountMismatch indicates orig, pred, or correction vectors
	// disagree in length with the transform's configured component count.
	ErrComponentCountMismatch = errors.New("predtransform: component count mismatch")
)
