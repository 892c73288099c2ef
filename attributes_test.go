package draco

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
	"github.com/dracogo/dracogo/prediction"
	"github.com/dracogo/dracogo/predtransform"
	"github.com/dracogo/dracogo/quantize"
	"github.com/dracogo/dracogo/wireformat"
)

func TestEncodeDecodeAttributeValues_Delta_RoundTrip(t *testing.T) {
	values := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 1},
	}
	w := iobit.NewByteWriter(64)
	encPredict, encObserve := newDeltaPredictor(3)
	require.NoError(t, encodeAttributeValues(w, values, 3, quantize.DefaultBits, prediction.DeltaKind, predtransform.DifferenceKind, encPredict, encObserve))

	r := iobit.NewByteReader(w.Bytes())
	decPredict, decObserve := newDeltaPredictor(3)
	scheme, out, err := decodeAttributeValues(r, len(values), 3, decPredict, decObserve)
	require.NoError(t, err)
	require.Equal(t, prediction.DeltaKind, scheme)
	require.Len(t, out, len(values))
	for i, v := range values {
		for c := range v {
			require.InDelta(t, v[c], out[i][c], 1e-2)
		}
	}
}

func TestEncodeDecodeAttributeValues_Empty(t *testing.T) {
	w := iobit.NewByteWriter(4)
	predict, observe := newDeltaPredictor(3)
	require.NoError(t, encodeAttributeValues(w, nil, 3, quantize.DefaultBits, prediction.DeltaKind, predtransform.DifferenceKind, predict, observe))

	r := iobit.NewByteReader(w.Bytes())
	predict2, observe2 := newDeltaPredictor(3)
	scheme, out, err := decodeAttributeValues(r, 0, 3, predict2, observe2)
	require.NoError(t, err)
	require.Equal(t, prediction.NoPredictionKind, scheme)
	require.Nil(t, out)
}

// buildTestTable returns the corner table for two triangles sharing an
// edge, the minimal shape with a real parallelogram candidate.
func buildTestTable(t *testing.T) (*cornertable.Table, []meshcore.Face) {
	t.Helper()
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := []meshcore.Face{{0, 1, 2}, {1, 3, 2}}
	pos, err := meshcore.NewAttributeDeduped(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, raw, nil)
	require.NoError(t, err)
	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = faces
	table, err := cornertable.Build(m)
	require.NoError(t, err)
	return table, faces
}

// TestParallelogramPredictor_EncodeDecodeAgree exercises Finding 2's wiring
// directly: an encode-side predictor driven by the real corner table and a
// decode-side predictor driven by connectivityTable's rebuild from the same
// faces must produce identical corrections for the same quantized values.
func TestParallelogramPredictor_EncodeDecodeAgree(t *testing.T) {
	table, faces := buildTestTable(t)
	numVertices := table.NumVertices()

	values := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	vertexAt := func(i int) meshcore.VertexIdx { return meshcore.VertexIdx(i) }

	w := iobit.NewByteWriter(64)
	encPredict, encObserve := newParallelogramPredictor(3, table, vertexAt)
	require.NoError(t, encodeAttributeValues(w, values, 3, quantize.DefaultBits, prediction.MeshParallelogramKind, predtransform.DifferenceKind, encPredict, encObserve))

	ct, err := connectivityTable(faces, numVertices)
	require.NoError(t, err)

	r := iobit.NewByteReader(w.Bytes())
	decPredict, decObserve := newParallelogramPredictor(3, ct, vertexAt)
	scheme, out, err := decodeAttributeValues(r, len(values), 3, decPredict, decObserve)
	require.NoError(t, err)
	require.Equal(t, prediction.MeshParallelogramKind, scheme)
	require.Len(t, out, len(values))
	for i, v := range values {
		for c := range v {
			require.InDelta(t, v[c], out[i][c], 1e-2)
		}
	}
}

func cornerDomainMesh(t *testing.T) *meshcore.Mesh {
	t.Helper()
	raw := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	pos, err := meshcore.NewAttributeDeduped(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 3, raw, nil)
	require.NoError(t, err)
	m := meshcore.NewMesh()
	m.AddAttribute(pos)
	m.Faces = []meshcore.Face{{0, 1, 2}}

	uv := meshcore.NewAttribute(0, meshcore.TextureCoordinate, meshcore.CornerDomain, attrbuf.F32Kind, 2, []meshcore.AttributeId{0})
	for _, v := range [][]float64{{0, 0}, {1, 0}, {0, 1}} {
		_, err := uv.PushUnique(v)
		require.NoError(t, err)
	}
	m.AddAttribute(uv)
	return m
}

// TestEncodeAttributes_CornerDomainWithEdgebreaker_Errors confirms corner
// domain attributes no longer silently drop their data under the
// Edgebreaker connectivity path: Encode must refuse loudly instead.
func TestEncodeAttributes_CornerDomainWithEdgebreaker_Errors(t *testing.T) {
	m := cornerDomainMesh(t)
	table, err := cornertable.Build(m)
	require.NoError(t, err)

	w := iobit.NewByteWriter(64)
	err = encodeAttributes(w, m, []int{0, 1, 2}, table, func(i int) meshcore.VertexIdx { return meshcore.VertexIdx(i) })
	require.ErrorIs(t, err, ErrCornerDomainUnsupportedWithEdgebreaker)
}

// TestEncodeDecodeAttributes_CornerDomain_Sequential exercises real
// corner-domain value coding end to end through encodeAttributes and the
// same attribute-section read loop Decode uses (Sequential connectivity,
// table nil).
func TestEncodeDecodeAttributes_CornerDomain_Sequential(t *testing.T) {
	m := cornerDomainMesh(t)
	uv, err := m.Attribute(1)
	require.NoError(t, err)
	wantUV := make([][]float64, 3)
	for c := 0; c < 3; c++ {
		wantUV[c] = uv.GetByRef(c)
	}

	w := iobit.NewByteWriter(256)
	require.NoError(t, encodeAttributes(w, m, identityOrder(m.NumPoints()), nil, nil))

	r := iobit.NewByteReader(w.Bytes())
	numAttrs, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(2), numAttrs)

	for i := 0; i < int(numAttrs); i++ {
		ah, err := wireformat.ReadAttributeHeader(r)
		require.NoError(t, err)

		predict, observe := newDeltaPredictor(ah.NumComponents)
		scheme, values, err := decodeAttributeValues(r, ah.NumValues, ah.NumComponents, predict, observe)
		require.NoError(t, err)
		require.Equal(t, prediction.DeltaKind, scheme)

		if ah.Domain == meshcore.CornerDomain {
			require.Len(t, values, 3)
			for c := range wantUV {
				for k := range wantUV[c] {
					require.InDelta(t, wantUV[c][k], values[c][k], 1e-2)
				}
			}
		}
	}
}
