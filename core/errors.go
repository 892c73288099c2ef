package meshcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for the meshcore package. Callers branch on these with
// errors.Is; messages are never used for control flow. See doc.go for the
// mapping onto spec.md §7's error taxonomy.
var (
	// ErrInvalidDataTypeId indicates a component-type byte outside the fixed
	// table in spec.md §6 ({U8..F64} = 1..10).
	ErrInvalidDataTypeId = errors.New("meshcore: invalid component data type id")

	// ErrInvalidAttributeTypeId indicates an attribute-type byte outside the
	// fixed table in spec.md §6 ({Position..Weight} = 0..8).
	ErrInvalidAttributeTypeId = errors.New("meshcore: invalid attribute type id")

	// ErrInvalidDomainId indicates a domain byte that is neither Position
	// nor Corner.
	ErrInvalidDomainId = errors.New("meshcore: invalid attribute domain id")

	// ErrMinimumDependency indicates an attribute was declared with a parent
	// dependency that the mesh does not satisfy (e.g. TextureCoordinate
	// without a Position attribute).
	ErrMinimumDependency = errors.New("meshcore: minimum attribute dependency not satisfied")

	// ErrAttributeSize indicates a value array length that disagrees with
	// num_components * sizeof(component_type).
	ErrAttributeSize = errors.New("meshcore: attribute value size mismatch")

	// ErrPositionAndConnectivityNotCompatible indicates a face references a
	// point index outside the bounds of the Position attribute's value
	// range.
	ErrPositionAndConnectivityNotCompatible = errors.New("meshcore: position attribute incompatible with connectivity")

	// ErrDegenerateFace indicates a face with two or more repeated vertex
	// indices.
	ErrDegenerateFace = errors.New("meshcore: degenerate face")

	// ErrNilMesh indicates an operation was attempted on a nil *Mesh.
	ErrNilMesh = errors.New("meshcore: nil mesh")

	// ErrAttributeNotFound indicates a lookup by AttributeId found nothing.
	ErrAttributeNotFound = errors.New("meshcore: attribute not found")
)

// wrapf attaches method context to err without losing errors.Is-ability,
// mirroring lvlath/builder's builderErrorf.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
