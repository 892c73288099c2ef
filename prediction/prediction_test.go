package prediction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
	"github.com/dracogo/dracogo/prediction"
)

// squareMesh mirrors cornertable's own fixture: positions (0,0) (1,0) (0,1)
// (1,1), faces [0,1,2] and [2,1,3] sharing the diagonal edge (1,2).
func squareMesh(t *testing.T) *meshcore.Mesh {
	t.Helper()
	raw := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	pos, err := meshcore.NewAttributeDeduped(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 2, raw, nil)
	require.NoError(t, err)

	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = []meshcore.Face{
		{0, 1, 2},
		{2, 1, 3},
	}
	return m
}

func lookupFromMap(values map[meshcore.VertexIdx][]int32) prediction.ValueLookup {
	return func(v meshcore.VertexIdx) ([]int32, bool) {
		val, ok := values[v]
		return val, ok
	}
}

func TestNoPrediction_IsZero(t *testing.T) {
	p := prediction.NewNoPrediction(3)
	got, ok := p.Predict(0, nil, nil, 0)
	require.True(t, ok)
	require.Equal(t, []int32{0, 0, 0}, got)
	require.Equal(t, prediction.NoPredictionKind, p.Kind())
}

func TestDeltaPrediction_TracksLastObserved(t *testing.T) {
	p := prediction.NewDeltaPrediction(2)
	got, ok := p.Predict(0, nil, nil, 0)
	require.True(t, ok)
	require.Equal(t, []int32{0, 0}, got)

	p.Observe([]int32{5, -3})
	got, ok = p.Predict(1, nil, nil, 0)
	require.True(t, ok)
	require.Equal(t, []int32{5, -3}, got)
}

func TestMeshParallelogramPrediction_Square(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	// Vertex 3 is the last new vertex added by face 1 ([2,1,3]); its corner
	// in that face is corner index 5 (face 1, local index 2). Vertices 0,1,2
	// are already "decoded" with known positions; the parallelogram rule
	// should predict v3 = v1 + v2 - v0 using the opposite face's apex.
	values := map[meshcore.VertexIdx][]int32{
		0: {0, 0},
		1: {2, 0},
		2: {0, 2},
	}
	p := prediction.NewMeshParallelogramPrediction(2)
	pred, ok := p.Predict(3, ct, lookupFromMap(values), meshcore.CornerIdx(5))
	require.True(t, ok)
	require.Equal(t, []int32{2, 2}, pred) // v1 + v2 - v0 = (2,0)+(0,2)-(0,0)
}

func TestMeshParallelogramPrediction_NoCandidate(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	p := prediction.NewMeshParallelogramPrediction(2)
	_, ok := p.Predict(0, ct, lookupFromMap(nil), meshcore.CornerIdx(0))
	require.False(t, ok)
}

func TestMeshMultiParallelogramPrediction_AveragesCandidates(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	values := map[meshcore.VertexIdx][]int32{
		0: {0, 0},
		1: {2, 0},
		2: {0, 2},
	}
	p := prediction.NewMeshMultiParallelogramPrediction(2)
	pred, ok := p.Predict(3, ct, lookupFromMap(values), meshcore.CornerIdx(5))
	require.True(t, ok)
	// Only one opposite face qualifies here (the square has just two
	// triangles), so multi-parallelogram degenerates to the single
	// parallelogram result.
	require.Equal(t, []int32{2, 2}, pred)
}

func TestMeshNormalPrediction_FlatSquareYieldsConsistentRoundTrip(t *testing.T) {
	positions := map[meshcore.VertexIdx][]int32{
		0: {0, 0, 0},
		1: {10, 0, 0},
		2: {0, 10, 0},
		3: {10, 10, 0},
	}
	posLookup := lookupFromMap(positions)

	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	enc := prediction.NewMeshNormalPrediction(8)
	actual := []int32{5, 5}
	predicted := enc.EncodePredict(ct, posLookup, meshcore.CornerIdx(0), actual)
	require.Len(t, predicted, 2)

	w := iobit.NewByteWriter(0)
	require.NoError(t, enc.EncodeMetadata(w))

	dec := prediction.NewMeshNormalPrediction(8)
	r := iobit.NewByteReader(w.Bytes())
	require.NoError(t, dec.DecodeMetadata(r, 1))
	flip := dec.NextFlip()
	got := dec.DecodePredict(ct, posLookup, meshcore.CornerIdx(0), flip)
	require.Equal(t, predicted, got)
}

func TestMeshPredictionForTextureCoordinates_DegenerateUV(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	positions := map[meshcore.VertexIdx][]int32{
		0: {0, 0, 0},
		1: {10, 0, 0},
		2: {0, 10, 0},
		3: {10, 10, 0},
	}
	uv := map[meshcore.VertexIdx][]int32{
		0: {1, 1},
		1: {2, 2},
		2: {2, 2},
	}
	p := prediction.NewMeshPredictionForTextureCoordinates()
	pred := p.EncodePredict(ct, lookupFromMap(positions), lookupFromMap(uv), meshcore.CornerIdx(0), []int32{2, 2})
	require.Equal(t, []int32{2, 2}, pred)
}

func TestDerivativePrediction_Square(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	positions := map[meshcore.VertexIdx][]int32{
		0: {0, 0, 0},
		1: {10, 0, 0},
		2: {0, 10, 0},
		3: {10, 10, 0},
	}
	uv := map[meshcore.VertexIdx][]int32{
		0: {0, 0},
		1: {10, 0},
		2: {0, 10},
	}
	p := prediction.NewDerivativePrediction(2)
	pred, ok := p.Predict(ct, lookupFromMap(positions), lookupFromMap(uv), meshcore.CornerIdx(5))
	require.True(t, ok)
	require.Equal(t, []int32{10, 10}, pred)
}
