package draco

import (
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/edgebreaker"
	"github.com/dracogo/dracogo/iobit"
	"github.com/dracogo/dracogo/meshbuilder"
	"github.com/dracogo/dracogo/prediction"
	"github.com/dracogo/dracogo/predtransform"
	"github.com/dracogo/dracogo/quantize"
	"github.com/dracogo/dracogo/wireformat"
)

// Encode normalizes mesh and serializes it to the spec.md §6 wire format.
func Encode(mesh *meshcore.Mesh) ([]byte, error) {
	normalized, err := meshbuilder.Build(mesh)
	if err != nil {
		return nil, wrapf("Encode", err)
	}

	w := iobit.NewByteWriter(512)

	table, tErr := cornertable.Build(normalized)
	var result *edgebreaker.Result
	if tErr == nil {
		result, tErr = edgebreaker.Encode(table)
	}

	if tErr != nil {
		wireformat.WriteHeader(w, wireformat.Header{
			EncoderType: wireformat.EncoderTypeMesh,
			Method:      wireformat.ConnMethodSequential,
		})
		wireformat.EncodeSequential(w, normalized.NumPoints(), normalized.Faces)
		order := identityOrder(normalized.NumPoints())
		if err := encodeAttributes(w, normalized, order, nil, nil); err != nil {
			return nil, wrapf("Encode", err)
		}
		return w.Bytes(), nil
	}

	wireformat.WriteHeader(w, wireformat.Header{
		EncoderType: wireformat.EncoderTypeMesh,
		Method:      wireformat.ConnMethodEdgebreaker,
	})
	wireformat.EncodeEdgebreaker(w, table.NumVertices(), table.NumFaces(), result)

	pos, err := normalized.PositionAttribute()
	if err != nil {
		return nil, wrapf("Encode", err)
	}
	slotToPoint := positionSlotToPoint(normalized, pos, table)
	order := make([]int, len(result.VertexOrder))
	vertexOrder := result.VertexOrder
	for i, v := range vertexOrder {
		order[i] = slotToPoint[int(v)]
	}
	vertexAt := func(i int) meshcore.VertexIdx { return vertexOrder[i] }
	if err := encodeAttributes(w, normalized, order, table, vertexAt); err != nil {
		return nil, wrapf("Encode", err)
	}
	return w.Bytes(), nil
}

// identityOrder returns {0, 1, ..., n-1}, the transmission order used by
// the Sequential connectivity fallback (no vertex reordering takes place).
func identityOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// positionSlotToPoint inverts Position's point-to-unique-value-slot
// mapping: a corner-table vertex id is exactly a Position unique-value
// slot for every non-synthesized vertex (Build resolves connectivity
// through pos.UniqueValueIdx), so recovering a representative point per
// slot lets every other position-domain attribute be read back in the
// traversal order Position itself is. Vertex ids the table synthesized
// while splitting a non-manifold vertex (table.NonManifoldVertexParents)
// carry no independent Position slot of their own; they read back the
// same value as the original vertex they were split from, since both
// still name the same physical point.
func positionSlotToPoint(mesh *meshcore.Mesh, pos *meshcore.Attribute, table *cornertable.Table) []int {
	numSlots := table.NumVertices()
	out := make([]int, numSlots)
	filled := make([]bool, numSlots)
	for p := 0; p < mesh.NumPoints(); p++ {
		slot := int(pos.UniqueValueIdx(p))
		if slot < 0 || slot >= numSlots {
			continue
		}
		if !filled[slot] {
			out[slot] = p
			filled[slot] = true
		}
	}
	parents := table.NonManifoldVertexParents()
	numOriginal := numSlots - len(parents)
	for i, parent := range parents {
		slot := numOriginal + i
		out[slot] = out[int(parent)]
	}
	return out
}

// encodeAttributes writes every attribute section in mesh's attribute
// order.
//
// Position-domain attributes are value-coded in transmission order
// (order[i]/vertexAt(i), built from positionSlotToPoint/identityOrder):
// when table is non-nil (the Edgebreaker path) they are predicted with
// MeshParallelogramPrediction, driven across table via vertexAt exactly as
// spec.md §4.G.3 describes, falling back to a zero prediction for any
// vertex with no fully-decoded parallelogram yet; the Sequential fallback
// (table nil) has no corner-table adjacency to offer the scheme, so it
// uses DeltaPrediction instead.
//
// Corner-domain attributes are value-coded per corner (0..NumFaces()*3-1,
// in face order) using DeltaPrediction, but only on the Sequential path:
// spirale.Decode reconstructs faces in its own traversal order rather than
// the input face order, so a corner-domain value transmitted against the
// Edgebreaker path's corner numbering could not be matched back to the
// right corner at decode time without also transmitting a face
// permutation (see ErrCornerDomainUnsupportedWithEdgebreaker, DESIGN.md).
func encodeAttributes(w *iobit.ByteWriter, mesh *meshcore.Mesh, order []int, table *cornertable.Table, vertexAt func(i int) meshcore.VertexIdx) error {
	attrs := mesh.Attributes()
	if table != nil {
		for _, a := range attrs {
			if a.Domain() == meshcore.CornerDomain {
				return wrapf("encodeAttributes", ErrCornerDomainUnsupportedWithEdgebreaker)
			}
		}
	}

	w.WriteU8(uint8(len(attrs)))
	for _, a := range attrs {
		switch a.Domain() {
		case meshcore.PositionDomain:
			values := make([][]float64, len(order))
			for i, p := range order {
				values[i] = a.GetByRef(p)
			}
			wireformat.WriteAttributeHeader(w, wireformat.AttributeHeader{
				Id:            a.Id(),
				Type:          a.Type(),
				Domain:        a.Domain(),
				Kind:          a.Kind(),
				NumComponents: a.NumComponents(),
				NumValues:     len(values),
				Parents:       a.Parents(),
			})
			var predict predictFunc
			var observe observeFunc
			schemeKind := prediction.DeltaKind
			if table != nil {
				predict, observe = newParallelogramPredictor(a.NumComponents(), table, vertexAt)
				schemeKind = prediction.MeshParallelogramKind
			} else {
				predict, observe = newDeltaPredictor(a.NumComponents())
			}
			if err := encodeAttributeValues(w, values, a.NumComponents(), quantize.DefaultBits, schemeKind, predtransform.DifferenceKind, predict, observe); err != nil {
				return err
			}
		case meshcore.CornerDomain:
			numCorners := mesh.NumFaces() * 3
			values := make([][]float64, numCorners)
			for c := 0; c < numCorners; c++ {
				values[c] = a.GetByRef(c)
			}
			wireformat.WriteAttributeHeader(w, wireformat.AttributeHeader{
				Id:            a.Id(),
				Type:          a.Type(),
				Domain:        a.Domain(),
				Kind:          a.Kind(),
				NumComponents: a.NumComponents(),
				NumValues:     len(values),
				Parents:       a.Parents(),
			})
			predict, observe := newDeltaPredictor(a.NumComponents())
			if err := encodeAttributeValues(w, values, a.NumComponents(), quantize.DefaultBits, prediction.DeltaKind, predtransform.DifferenceKind, predict, observe); err != nil {
				return err
			}
		}
	}
	return nil
}
