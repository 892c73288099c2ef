package meshbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/meshbuilder"
)

// identityMeshFromFaces builds a mesh whose Position attribute is NOT
// dedup-constructed: every raw value gets its own unique slot under an
// identity map, even when two points share identical bytes. This lets
// tests exercise meshbuilder's own dedup pass rather than
// meshcore.NewAttributeDeduped's.
func identityMeshFromFaces(t *testing.T, raw [][]float64, faces []meshcore.Face) *meshcore.Mesh {
	t.Helper()
	pos := meshcore.NewAttribute(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, nil)
	for _, v := range raw {
		_, err := pos.PushUnique(v)
		require.NoError(t, err)
	}
	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = faces
	return m
}

func TestBuild_DedupesByPosition(t *testing.T) {
	raw := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 0, 0} /* dup of 0 */, {0, 1, 0},
	}
	faces := []meshcore.Face{{0, 1, 2}, {1, 2, 3}}
	m := identityMeshFromFaces(t, raw, faces)

	out, err := meshbuilder.Build(m)
	require.NoError(t, err)

	pos, err := out.PositionAttribute()
	require.NoError(t, err)
	require.Equal(t, 3, pos.NumUniqueValues())

	// point 2 (duplicate of point 0) is merged into point 0: face {0,1,2}
	// collapses to {0,1,0} and is dropped, and face {1,2,3} survives as
	// {1,0,2} once point 3 is compacted down to 2.
	require.Equal(t, []meshcore.Face{{1, 0, 2}}, out.Faces)
	require.Equal(t, []float64{0, 0, 0}, pos.GetByRef(int(out.Faces[0][1])))
}

func TestBuild_DropsDegenerateFaces(t *testing.T) {
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := []meshcore.Face{
		{0, 1, 2},
		{1, 1, 3}, // degenerate: repeated vertex
	}
	m := identityMeshFromFaces(t, raw, faces)

	out, err := meshbuilder.Build(m)
	require.NoError(t, err)
	require.Len(t, out.Faces, 1)
	require.Equal(t, meshcore.Face{0, 1, 2}, out.Faces[0])
}

func TestBuild_CompactsUnreferencedVertices(t *testing.T) {
	raw := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {9, 9, 9}, /* never referenced */
	}
	faces := []meshcore.Face{{0, 1, 2}}
	m := identityMeshFromFaces(t, raw, faces)

	out, err := meshbuilder.Build(m)
	require.NoError(t, err)

	pos, err := out.PositionAttribute()
	require.NoError(t, err)
	require.Equal(t, 3, pos.NumUniqueValues())
	for _, f := range out.Faces {
		for _, p := range f {
			require.Less(t, int(p), pos.NumMapped())
		}
	}
}

func TestBuild_RejectsUnsatisfiedDependency(t *testing.T) {
	uv := meshcore.NewAttribute(0, meshcore.TextureCoordinate, meshcore.PositionDomain, attrbuf.F32Kind, 2, []meshcore.AttributeId{99})
	m := meshcore.NewMesh()
	m.AddAttribute(uv)
	m.Faces = []meshcore.Face{{0, 0, 0}}

	_, err := meshbuilder.Build(m)
	require.ErrorIs(t, err, meshbuilder.ErrMinimumDependency)
}

func TestBuild_SortsPositionFirst(t *testing.T) {
	uv := meshcore.NewAttribute(0, meshcore.TextureCoordinate, meshcore.CornerDomain, attrbuf.F32Kind, 2, nil)
	for _, v := range [][]float64{{0, 0}, {1, 0}, {0, 1}} {
		_, err := uv.PushUnique(v)
		require.NoError(t, err)
	}
	m := meshcore.NewMesh()
	m.AddAttribute(uv)
	pos := meshcore.NewAttribute(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, nil)
	for _, v := range [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
		_, err := pos.PushUnique(v)
		require.NoError(t, err)
	}
	m.AddAttribute(pos)
	m.Faces = []meshcore.Face{{0, 1, 2}}

	out, err := meshbuilder.Build(m)
	require.NoError(t, err)
	require.Equal(t, meshcore.Position, out.Attributes()[0].Type())
}

// TestBuild_ProducesCornerTableReady checks the whole normalization
// pipeline end to end by feeding its output straight into
// cornertable.Build, which rejects an unused vertex.
func TestBuild_ProducesCornerTableReady(t *testing.T) {
	raw := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {42, 42, 42},
	}
	faces := []meshcore.Face{
		{0, 1, 2}, // degenerate once point 2 dedupes onto point 0
		{1, 2, 3},
	}
	m := identityMeshFromFaces(t, raw, faces)

	out, err := meshbuilder.Build(m)
	require.NoError(t, err)

	_, err = cornertable.Build(out)
	require.NoError(t, err)
}
