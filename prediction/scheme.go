package prediction

import meshcore "github.com/dracogo/dracogo/core"

// Scheme is the common contract for the four prediction schemes whose
// prediction depends only on already-decoded attribute values of the same
// kind (NoPrediction, DeltaPrediction, MeshParallelogramPrediction,
// MeshMultiParallelogramPrediction). TexCoord, Normal, and Derivative
// additionally need the Position attribute and per-value orientation/flip
// metadata, so they are not unified under this interface — the orchestrator
// dispatches to them directly by Kind.
//
// Predict returns ok=false when the scheme has no qualifying data to
// predict from (only possible for the parallelogram family); callers
// encode such vertices without prediction, per spec.md §4.G.3.
type Scheme interface {
	Kind() Kind
	Predict(v meshcore.VertexIdx, t cornerTable, lookup ValueLookup, corner meshcore.CornerIdx) ([]int32, bool)
}

var (
	_ Scheme = (*NoPrediction)(nil)
	_ Scheme = (*DeltaPrediction)(nil)
	_ Scheme = (*MeshParallelogramPrediction)(nil)
	_ Scheme = (*MeshMultiParallelogramPrediction)(nil)
)
