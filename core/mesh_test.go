package meshcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	meshcore "github.com/dracogo/dracogo/core"
)

func TestMeshAddAttributeAssignsMonotonicIds(t *testing.T) {
	m := meshcore.NewMesh()
	pos := meshcore.NewAttribute(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, nil)
	norm := meshcore.NewAttribute(0, meshcore.Normal, meshcore.PositionDomain, attrbuf.F32Kind, 3, nil)

	id0 := m.AddAttribute(pos)
	id1 := m.AddAttribute(norm)

	require.Equal(t, meshcore.AttributeId(0), id0)
	require.Equal(t, meshcore.AttributeId(1), id1)
	require.Equal(t, id0, pos.Id())
	require.Equal(t, id1, norm.Id())
}

func TestMeshValidate(t *testing.T) {
	m := meshcore.NewMesh()
	pos := meshcore.NewAttribute(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, nil)
	for _, v := range [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
		_, err := pos.PushUnique(v)
		require.NoError(t, err)
	}
	m.AddAttribute(pos)
	m.Faces = []meshcore.Face{{0, 1, 2}}
	require.NoError(t, m.Validate())

	m.Faces = append(m.Faces, meshcore.Face{0, 0, 1})
	require.ErrorIs(t, m.Validate(), meshcore.ErrDegenerateFace)

	m.Faces = []meshcore.Face{{0, 1, 5}}
	require.ErrorIs(t, m.Validate(), meshcore.ErrPositionAndConnectivityNotCompatible)
}

func TestMeshValidateTextureCoordinateNeedsPosition(t *testing.T) {
	m := meshcore.NewMesh()
	uv := meshcore.NewAttribute(0, meshcore.TextureCoordinate, meshcore.CornerDomain, attrbuf.F32Kind, 2, nil)
	m.AddAttribute(uv)
	require.ErrorIs(t, m.Validate(), meshcore.ErrMinimumDependency)
}
