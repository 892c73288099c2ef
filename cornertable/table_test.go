package cornertable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
)

// squareMesh builds the two-triangle square fixture from spec.md §8:
// positions (0,0) (1,0) (0,1) (1,1), faces [0,1,2] and [2,1,3], sharing the
// diagonal edge (1,2). This is also draco-oxide's corner_table::tests
// fixture (test_corner_table).
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

func TestBuild_SquareTwoTriangles(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	require.Equal(t, 2, ct.NumFaces())
	require.Equal(t, 6, ct.NumCorners())
	require.Equal(t, 4, ct.NumVertices())

	require.Equal(t, meshcore.FaceIdx(0), ct.FaceIdxContaining(meshcore.CornerIdx(0)))
	require.Equal(t, meshcore.FaceIdx(0), ct.FaceIdxContaining(meshcore.CornerIdx(2)))
	require.Equal(t, meshcore.FaceIdx(1), ct.FaceIdxContaining(meshcore.CornerIdx(3)))

	// Corner 0 (face 0, vertex 0) is opposite edge (v1,v2) -- the shared
	// diagonal -- and corner 5 (face 1, vertex 3) is opposite edge (v2,v1),
	// the same undirected edge seen from the other face: they must be
	// mutual opposites. Every other corner borders the quad's outer
	// boundary and has none.
	oc, ok := ct.Opposite(meshcore.CornerIdx(0))
	require.True(t, ok)
	require.Equal(t, meshcore.CornerIdx(5), oc)
	back, ok := ct.Opposite(oc)
	require.True(t, ok)
	require.Equal(t, meshcore.CornerIdx(0), back)

	for _, c := range []meshcore.CornerIdx{1, 2, 3, 4} {
		_, ok := ct.Opposite(c)
		require.False(t, ok, "corner %d borders the quad's outer boundary", c)
	}
}

func TestTable_SwingAndBoundary(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	for v := meshcore.VertexIdx(0); int(v) < ct.NumVertices(); v++ {
		c := ct.LeftMostCorner(v)
		require.True(t, c.Valid())
		require.Equal(t, v, ct.VertexIdx(c))
	}

	// The square is an open surface (two triangles, one shared diagonal,
	// four boundary edges): every vertex touches at least one boundary
	// edge, so every vertex reports on-boundary.
	for v := meshcore.VertexIdx(0); int(v) < ct.NumVertices(); v++ {
		require.True(t, ct.IsOnBoundary(v), "vertex %d", v)
	}

	// Vertex 1 (shared by both faces via the diagonal) has valence 3: the
	// two boundary edges (v0,v1) and (v1,v3) plus the diagonal (v1,v2).
	require.Equal(t, 3, ct.VertexValence(1))
}

func TestTable_NextPreviousCycle(t *testing.T) {
	m := squareMesh(t)
	ct, err := cornertable.Build(m)
	require.NoError(t, err)

	for c := meshcore.CornerIdx(0); int(c) < ct.NumCorners(); c++ {
		require.Equal(t, c, ct.Next(ct.Next(ct.Next(c))))
		require.Equal(t, c, ct.Previous(ct.Previous(ct.Previous(c))))
		require.Equal(t, c, ct.Next(ct.Previous(c)))
	}
}

func TestBuild_UnusedVertexRejected(t *testing.T) {
	// Four distinct positions, but the sole face references only indices
	// {0,1,3}: index 2 falls inside the table's vertex numbering range
	// (0..=3, since index 3 is referenced) yet no corner ever resolves to
	// it -- exactly the gap the original panics on.
	raw := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	pos, err := meshcore.NewAttributeDeduped(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 2, raw, nil)
	require.NoError(t, err)
	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = []meshcore.Face{{0, 1, 3}}

	_, err = cornertable.Build(m)
	require.ErrorIs(t, err, cornertable.ErrUnusedVertex)
}
