package cornertable

import (
	"errors"
	"fmt"
)

// Sentinel errors for package cornertable.
var (
	// ErrUnusedVertex indicates a vertex index appears in no face's
	// connectivity, which the corner table cannot represent (the original
	// panics here; this implementation reports it instead).
	ErrUnusedVertex = errors.New("cornertable: mesh contains an unused vertex")

	// ErrNoPositionAttribute indicates Build was called on a mesh with no
	// Position attribute, which connectivity resolution requires.
	ErrNoPositionAttribute = errors.New("cornertable: mesh has no position attribute")

	// ErrNonManifoldGeometry indicates the corner table could not be fully
	// resolved even after the non-manifold edge/vertex repair passes.
	ErrNonManifoldGeometry = errors.New("cornertable: irreparable non-manifold geometry")

	// ErrNonOrientable indicates the mesh's faces cannot be consistently
	// wound: the orientation BFS found a manifold edge shared by two faces
	// that both traverse it in the same direction. Edgebreaker requires an
	// orientable mesh (spec.md §4.D); the encoder refuses such input.
	ErrNonOrientable = errors.New("cornertable: mesh is not orientable")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("cornertable.%s: %w", method, err)
}
