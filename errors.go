package draco

import (
	"errors"
	"fmt"
)

// ErrCornerDomainUnsupportedWithEdgebreaker indicates a mesh carries a
// corner-domain attribute (e.g. seam-bearing texture coordinates) but was
// routed through the Edgebreaker connectivity encoder. spirale.Decode
// reconstructs faces in its own traversal order rather than the input
// mesh's face order, so a corner index transmitted at encode time cannot
// be matched back to a decoded corner without also transmitting a face
// permutation, which this package does not yet do (see DESIGN.md). Rather
// than silently dropping the attribute's values, Encode refuses.
var ErrCornerDomainUnsupportedWithEdgebreaker = errors.New("draco: corner-domain attribute requires the Sequential connectivity fallback")

// ErrPredictionSchemeMismatch indicates Decode read a different
// prediction-scheme id than the one its reconstruction logic assumed for
// an attribute's domain/type, meaning the stream was produced by an
// encoder version this package's scheme-selection rules disagree with.
var ErrPredictionSchemeMismatch = errors.New("draco: decoded prediction scheme does not match the expected scheme for this attribute")

func wrapf(method string, err error) error {
	return fmt.Errorf("draco.%s: %w", method, err)
}
