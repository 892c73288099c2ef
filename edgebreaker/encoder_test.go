package edgebreaker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/edgebreaker"
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

// numSymbolsInvariant is true of every Encode result: every face but the
// per-component start face is visited via exactly one emitted symbol.
func numSymbolsInvariant(t *testing.T, r *edgebreaker.Result, numFaces int) {
	t.Helper()
	require.Equal(t, numFaces, len(r.Symbols)+len(r.InteriorBits))
}

func TestEncode_TwoTriangleStrip(t *testing.T) {
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := []meshcore.Face{{0, 1, 2}, {1, 2, 3}}
	m := meshFromFaces(t, raw, faces)

	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	r, err := edgebreaker.Encode(ct)
	require.NoError(t, err)

	numSymbolsInvariant(t, r, ct.NumFaces())
	require.Len(t, r.InteriorBits, 1)
	require.False(t, r.InteriorBits[0]) // the shared-edge-only strip has no fully interior start face

	// Both triangles are recovered: four distinct vertices are visited,
	// the first three being the start face's CCW order and the fourth the
	// lone new vertex.
	require.Len(t, r.VertexOrder, 4)
	require.ElementsMatch(t, []meshcore.VertexIdx{0, 1, 2, 3}, r.VertexOrder)

	// Exactly one new vertex remains once the start face is seeded; the
	// single corner stepped into across the shared edge is a dead end on
	// both remaining sides (both are open boundary), so it ends the walk.
	require.Equal(t, []edgebreaker.Symbol{edgebreaker.SymbolE}, r.Symbols)
}

func TestEncode_SquareWithSplit(t *testing.T) {
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

	numSymbolsInvariant(t, r, ct.NumFaces())
	require.Len(t, r.VertexOrder, ct.NumVertices())

	// Every symbol id a TopologySplit references must be in range and the
	// source must strictly precede the split it is attached to.
	for _, s := range r.Splits {
		require.Less(t, s.SourceSymbolId, s.SplitSymbolId)
		require.GreaterOrEqual(t, s.SourceSymbolId, 0)
		require.Less(t, s.SplitSymbolId, len(r.Symbols))
	}
}

func TestEncode_EncodeBytesRoundTripsSymbolCount(t *testing.T) {
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := []meshcore.Face{{0, 1, 2}, {1, 2, 3}}
	m := meshFromFaces(t, raw, faces)

	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	r, err := edgebreaker.Encode(ct)
	require.NoError(t, err)

	packed := r.EncodeBytes()
	require.NotEmpty(t, packed)

	unpacked, err := edgebreaker.DecodeBytes(packed, len(r.Symbols))
	require.NoError(t, err)
	require.Equal(t, r.Symbols, unpacked)
}
