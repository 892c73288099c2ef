package prediction

import meshcore "github.com/dracogo/dracogo/core"

// NoPrediction always predicts the zero vector (spec.md §4.G.1).
type NoPrediction struct {
	numComponents int
}

// NewNoPrediction returns a NoPrediction scheme for numComponents-wide
// values.
func NewNoPrediction(numComponents int) *NoPrediction {
	return &NoPrediction{numComponents: numComponents}
}

func (p *NoPrediction) Kind() Kind { return NoPredictionKind }

// Predict implements Scheme.
func (p *NoPrediction) Predict(meshcore.VertexIdx, cornerTable, ValueLookup, meshcore.CornerIdx) ([]int32, bool) {
	return make([]int32, p.numComponents), true
}

// DeltaPrediction predicts the previously-processed value in traversal
// order (spec.md §4.G.2).
type DeltaPrediction struct {
	numComponents int
	last          []int32
}

// NewDeltaPrediction returns a DeltaPrediction scheme.
func NewDeltaPrediction(numComponents int) *DeltaPrediction {
	return &DeltaPrediction{numComponents: numComponents, last: make([]int32, numComponents)}
}

func (p *DeltaPrediction) Kind() Kind { return DeltaKind }

// Predict returns the last value observed via Observe, or zero before the
// first call.
func (p *DeltaPrediction) Predict(meshcore.VertexIdx, cornerTable, ValueLookup, meshcore.CornerIdx) ([]int32, bool) {
	return append([]int32(nil), p.last...), true
}

// Observe records the true value of the vertex just processed, so the next
// Predict call returns it. Callers (encoder and decoder alike) must call
// this once per vertex immediately after its value becomes known.
func (p *DeltaPrediction) Observe(v []int32) {
	copy(p.last, v)
}

// MeshParallelogramPrediction finds the first already-decoded parallelogram
// opposite the vertex at corner and predicts a+b-diagonal (spec.md
// §4.G.3). If no qualifying face exists the vertex is unpredictable and
// Predict reports ok=false; callers fall back to encoding the raw value
// (equivalently, predicting zero).
type MeshParallelogramPrediction struct {
	numComponents int
}

// NewMeshParallelogramPrediction returns a MeshParallelogramPrediction
// scheme for numComponents-wide values.
func NewMeshParallelogramPrediction(numComponents int) *MeshParallelogramPrediction {
	return &MeshParallelogramPrediction{numComponents: numComponents}
}

func (p *MeshParallelogramPrediction) Kind() Kind { return MeshParallelogramKind }

// Predict implements the parallelogram rule, reporting ok=false when no
// candidate parallelogram is fully decoded yet.
func (p *MeshParallelogramPrediction) Predict(_ meshcore.VertexIdx, t cornerTable, lookup ValueLookup, corner meshcore.CornerIdx) ([]int32, bool) {
	candidates := parallelogramCandidates(t, lookup, corner)
	if len(candidates) == 0 {
		return make([]int32, p.numComponents), false
	}
	c := candidates[0]
	out := make([]int32, p.numComponents)
	for i := 0; i < p.numComponents; i++ {
		out[i] = c.a[i] + c.b[i] - c.diagonal[i]
	}
	return out, true
}

// MeshMultiParallelogramPrediction averages every qualifying parallelogram
// prediction around the vertex at corner (spec.md §4.G.4).
type MeshMultiParallelogramPrediction struct {
	numComponents int
}

// NewMeshMultiParallelogramPrediction returns a
// MeshMultiParallelogramPrediction scheme.
func NewMeshMultiParallelogramPrediction(numComponents int) *MeshMultiParallelogramPrediction {
	return &MeshMultiParallelogramPrediction{numComponents: numComponents}
}

func (p *MeshMultiParallelogramPrediction) Kind() Kind { return MultiParallelogramKind }

// Predict averages every candidate; ok=false when none are available.
func (p *MeshMultiParallelogramPrediction) Predict(_ meshcore.VertexIdx, t cornerTable, lookup ValueLookup, corner meshcore.CornerIdx) ([]int32, bool) {
	candidates := parallelogramCandidates(t, lookup, corner)
	if len(candidates) == 0 {
		return make([]int32, p.numComponents), false
	}
	sum := make([]int64, p.numComponents)
	for _, c := range candidates {
		for i := 0; i < p.numComponents; i++ {
			sum[i] += int64(c.a[i]) + int64(c.b[i]) - int64(c.diagonal[i])
		}
	}
	out := make([]int32, p.numComponents)
	for i := 0; i < p.numComponents; i++ {
		out[i] = int32(sum[i] / int64(len(candidates)))
	}
	return out, true
}
