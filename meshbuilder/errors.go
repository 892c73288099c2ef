package meshbuilder

import (
	"errors"
	"fmt"
)

// Sentinel errors for package meshbuilder.
var (
	// ErrNilMesh indicates Build was called with a nil *meshcore.Mesh.
	ErrNilMesh = errors.New("meshbuilder: nil mesh")

	// ErrMinimumDependency indicates an attribute's declared parent
	// dependency is not present on the mesh (e.g. TextureCoordinate
	// without a Position attribute).
	ErrMinimumDependency = errors.New("meshbuilder: minimum attribute dependency not satisfied")

	// ErrPointOutOfRange indicates a face references a point index beyond
	// a position-domain attribute's mapped value range.
	ErrPointOutOfRange = errors.New("meshbuilder: point index out of attribute range")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("meshbuilder.%s: %w", method, err)
}
