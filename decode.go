package draco

import (
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
	"github.com/dracogo/dracogo/prediction"
	"github.com/dracogo/dracogo/spirale"
	"github.com/dracogo/dracogo/wireformat"
)

// Decode parses a wireformat stream produced by Encode, rebuilding the
// mesh: connectivity first (Edgebreaker/Spirale Reversi or the Sequential
// fallback), then every attribute section in stream order.
//
// Position-domain attribute values are transmitted, for both connectivity
// methods, in exactly the order decoded point ids are produced (Encode's
// VertexOrder/slotToPoint bookkeeping and the Sequential fallback's
// identity order both arrange for this) — by the Spirale Reversi
// guarantee a newly-created decoded vertex id always equals its position
// in that transmission sequence. For the Edgebreaker path this package
// also rebuilds a corner table from the decoded faces alone
// (connectivityTable), letting MeshParallelogramPrediction run at decode
// time in lockstep with the encoder, over the same transmission-index
// numbering.
func Decode(data []byte) (*meshcore.Mesh, error) {
	r := iobit.NewByteReader(data)

	h, err := wireformat.ReadHeader(r)
	if err != nil {
		return nil, wrapf("Decode", err)
	}

	mesh := meshcore.NewMesh()

	var ct *cornertable.Table
	var vertexAt func(i int) meshcore.VertexIdx

	switch h.Method {
	case wireformat.ConnMethodEdgebreaker:
		numVertices, _, result, err := wireformat.DecodeEdgebreaker(r)
		if err != nil {
			return nil, wrapf("Decode", err)
		}
		faces, err := spirale.Decode(result)
		if err != nil {
			return nil, wrapf("Decode", err)
		}
		mesh.Faces = faces
		ct, err = connectivityTable(faces, numVertices)
		if err != nil {
			return nil, wrapf("Decode", err)
		}
		vertexAt = func(i int) meshcore.VertexIdx { return meshcore.VertexIdx(i) }
	case wireformat.ConnMethodSequential:
		_, faces, err := wireformat.DecodeSequential(r)
		if err != nil {
			return nil, wrapf("Decode", err)
		}
		mesh.Faces = faces
	default:
		return nil, wrapf("Decode", wireformat.ErrInvalidConnMethod)
	}

	numAttrs, err := r.ReadU8()
	if err != nil {
		return nil, wrapf("Decode", err)
	}

	idTranslate := make(map[meshcore.AttributeId]meshcore.AttributeId, numAttrs)
	for i := 0; i < int(numAttrs); i++ {
		ah, err := wireformat.ReadAttributeHeader(r)
		if err != nil {
			return nil, wrapf("Decode", err)
		}

		var predict predictFunc
		var observe observeFunc
		wantScheme := prediction.DeltaKind
		switch {
		case ah.Domain == meshcore.PositionDomain && ct != nil:
			predict, observe = newParallelogramPredictor(ah.NumComponents, ct, vertexAt)
			wantScheme = prediction.MeshParallelogramKind
		case ah.Domain == meshcore.CornerDomain && ct != nil:
			return nil, wrapf("Decode", ErrCornerDomainUnsupportedWithEdgebreaker)
		default:
			predict, observe = newDeltaPredictor(ah.NumComponents)
		}

		gotScheme, values, err := decodeAttributeValues(r, ah.NumValues, ah.NumComponents, predict, observe)
		if err != nil {
			return nil, wrapf("Decode", err)
		}
		if len(values) > 0 && gotScheme != wantScheme {
			return nil, wrapf("Decode", ErrPredictionSchemeMismatch)
		}

		parents := make([]meshcore.AttributeId, len(ah.Parents))
		for j, p := range ah.Parents {
			parents[j] = idTranslate[p]
		}

		attr := meshcore.NewAttribute(0, ah.Type, ah.Domain, ah.Kind, ah.NumComponents, parents)
		for _, v := range values {
			if _, err := attr.PushUnique(v); err != nil {
				return nil, wrapf("Decode", err)
			}
		}
		newID := mesh.AddAttribute(attr)
		idTranslate[ah.Id] = newID
	}

	if err := mesh.Validate(); err != nil {
		return nil, wrapf("Decode", err)
	}
	return mesh, nil
}
