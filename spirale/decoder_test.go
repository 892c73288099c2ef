package spirale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/edgebreaker"
	"github.com/dracogo/dracogo/spirale"
)

func meshFromFaces(t *testing.T, raw [][]float64, faces []meshcore.Face) *meshcore.Mesh {
	t.Helper()
	pos, err := meshcore.NewAttributeDeduped(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, raw, nil)
	require.NoError(t, err)
	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = faces
	return m
}

// syntheticPositions builds n distinct raw points so a decoded face list
// (whose vertex ids carry no geometry of their own) can be fed back through
// cornertable.Build to confirm it describes a valid, orientable manifold.
func syntheticPositions(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = []float64{float64(i), float64(i) * 2, float64(i) * 3}
	}
	return out
}

func rebuild(t *testing.T, faces []meshcore.Face, numVerts int) *cornertable.Table {
	t.Helper()
	m := meshFromFaces(t, syntheticPositions(numVerts), faces)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)
	return ct
}

func TestDecode_TwoTriangleStrip(t *testing.T) {
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := []meshcore.Face{{0, 1, 2}, {1, 2, 3}}
	m := meshFromFaces(t, raw, faces)

	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	r, err := edgebreaker.Encode(ct)
	require.NoError(t, err)

	decoded, err := spirale.Decode(r)
	require.NoError(t, err)

	require.Len(t, decoded, 2)
	seen := map[meshcore.PointIdx]bool{}
	for _, f := range decoded {
		for _, v := range f {
			seen[v] = true
		}
	}
	require.Len(t, seen, 4)

	rebuild(t, decoded, len(seen))
}

func TestDecode_SquareWithSplit(t *testing.T) {
	raw := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{1, 1, 0}, {0.5, 2, 0}, {0, 2, 0},
	}
	faces := []meshcore.Face{
		{0, 1, 2}, {0, 2, 4}, {0, 4, 5}, {2, 3, 4},
	}
	m := meshFromFaces(t, raw, faces)

	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	r, err := edgebreaker.Encode(ct)
	require.NoError(t, err)

	decoded, err := spirale.Decode(r)
	require.NoError(t, err)
	require.Len(t, decoded, ct.NumFaces())

	seen := map[meshcore.PointIdx]bool{}
	for _, f := range decoded {
		for _, v := range f {
			seen[v] = true
		}
	}
	require.Len(t, seen, ct.NumVertices())

	rebuilt := rebuild(t, decoded, len(seen))
	require.Equal(t, ct.NumFaces(), rebuilt.NumFaces())
}

func TestDecode_EmptyResultIsRejected(t *testing.T) {
	_, err := spirale.Decode(&edgebreaker.Result{})
	require.ErrorIs(t, err, spirale.ErrEmptyStream)
}
