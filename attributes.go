package draco

import (
	"github.com/dracogo/dracogo/attrbuf"
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/entropy"
	"github.com/dracogo/dracogo/iobit"
	"github.com/dracogo/dracogo/prediction"
	"github.com/dracogo/dracogo/predtransform"
	"github.com/dracogo/dracogo/quantize"
)

// entropyPrecision is the rANS precision used for every attribute
// correction stream.
const entropyPrecision uint = 12

// predictFunc returns the predicted value for transmission index i, given
// whatever already-observed state the closure's builder captured (a
// corner-table/ValueLookup pair for the position schemes, or a plain
// "last value" for Delta). observeFunc is called immediately after index
// i's true quantized value becomes known, so state is current before the
// next predictFunc call — the single shape both Encode (values all known
// upfront, but scanned in the same order) and Decode (values produced one
// at a time) drive identically.
type predictFunc func(i int) []int32
type observeFunc func(i int, v []int32)

// newDeltaPredictor drives prediction.DeltaPrediction across transmission
// order directly; it needs no corner-table context, so it is the fallback
// for the Sequential connectivity path and for corner-domain attributes.
func newDeltaPredictor(numComponents int) (predictFunc, observeFunc) {
	scheme := prediction.NewDeltaPrediction(numComponents)
	predict := func(int) []int32 {
		pred, _ := scheme.Predict(0, nil, nil, 0)
		return pred
	}
	observe := func(_ int, v []int32) {
		scheme.Observe(v)
	}
	return predict, observe
}

// newParallelogramPredictor drives prediction.MeshParallelogramPrediction
// over t, resolving the vertex at transmission index i via vertexAt and
// falling back to a zero prediction (equivalent to NoPrediction) when no
// parallelogram candidate has been decoded yet, matching
// MeshParallelogramPrediction.Predict's own ok=false contract.
func newParallelogramPredictor(numComponents int, t *cornertable.Table, vertexAt func(i int) meshcore.VertexIdx) (predictFunc, observeFunc) {
	scheme := prediction.NewMeshParallelogramPrediction(numComponents)
	seen := make(map[meshcore.VertexIdx][]int32)
	predict := func(i int) []int32 {
		v := vertexAt(i)
		lookup := prediction.ValueLookup(func(vv meshcore.VertexIdx) ([]int32, bool) {
			val, ok := seen[vv]
			return val, ok
		})
		pred, ok := scheme.Predict(v, t, lookup, t.LeftMostCorner(v))
		if !ok {
			return make([]int32, numComponents)
		}
		return pred
	}
	observe := func(i int, v []int32) {
		seen[vertexAt(i)] = v
	}
	return predict, observe
}

// connectivityTable rebuilds a *cornertable.Table purely from decoded face
// connectivity, with no real Position data: decode assigns vertex ids
// 0..numVertices-1 in exactly the order Encode's VertexOrder recorded them
// (the Spirale Reversi guarantee decode.go's doc comment names), so a
// synthetic Position attribute whose unique value i is simply the number
// i — installed with no explicit ValueMap, so UniqueValueIdx is the
// identity — reproduces cornertable.Build's connFaces exactly as the
// encoder's real table had them, letting position-domain prediction
// schemes run at decode time over the same SwingLeft/SwingRight/Opposite
// primitives the encoder used, without needing real coordinates yet.
func connectivityTable(faces []meshcore.Face, numVertices int) (*cornertable.Table, error) {
	pos := meshcore.NewAttribute(0, meshcore.Position, meshcore.PositionDomain, attrbuf.F32Kind, 1, nil)
	for i := 0; i < numVertices; i++ {
		if _, err := pos.PushUnique([]float64{float64(i)}); err != nil {
			return nil, wrapf("connectivityTable", err)
		}
	}
	synthetic := meshcore.NewMesh()
	synthetic.AddAttribute(pos)
	synthetic.Faces = faces
	table, err := cornertable.Build(synthetic)
	if err != nil {
		return nil, wrapf("connectivityTable", err)
	}
	return table, nil
}

// encodeAttributeValues writes values (one numComponents-wide float vector
// per value, in transmission order) through the full attribute pipeline of
// spec.md §4.G/H/I/4.B: a written prediction-scheme id, a written
// prediction-transform id, quantization to bounded non-negative integers,
// the chosen transform, then one rANS-coded correction stream per
// component. schemeKind/transformKind are written explicitly so Decode
// dispatches on what Encode actually chose rather than assuming a fixed
// scheme.
func encodeAttributeValues(w *iobit.ByteWriter, values [][]float64, numComponents, bits int, schemeKind prediction.Kind, transformKind predtransform.Kind, predict predictFunc, observe observeFunc) error {
	if len(values) == 0 {
		w.WriteU8(1) // empty flag
		return nil
	}
	w.WriteU8(0)
	w.WriteU8(uint8(schemeKind))
	w.WriteU8(uint8(transformKind))

	quantE, err := quantize.NewEncoder(numComponents, bits)
	if err != nil {
		return wrapf("encodeAttributeValues", err)
	}
	for _, v := range values {
		vv := make([]float32, numComponents)
		for i, c := range v {
			vv[i] = float32(c)
		}
		if err := quantE.Add(vv); err != nil {
			return wrapf("encodeAttributeValues", err)
		}
	}
	quantized, err := quantE.Squeeze(w)
	if err != nil {
		return wrapf("encodeAttributeValues", err)
	}

	transform := predtransform.NewEncoder(transformKind, numComponents)
	for i, q := range quantized {
		pred := predict(i)
		if err := transform.Map(q, pred); err != nil {
			return wrapf("encodeAttributeValues", err)
		}
		observe(i, q)
	}
	corrections := transform.Squeeze(w)

	for c := 0; c < numComponents; c++ {
		maxVal := uint32(0)
		for _, corr := range corrections {
			if corr[c] > maxVal {
				maxVal = corr[c]
			}
		}
		enc := entropy.NewRansSymbolEncoder(int(maxVal)+1, entropyPrecision)
		for _, corr := range corrections {
			if err := enc.Write(int(corr[c])); err != nil {
				return wrapf("encodeAttributeValues", err)
			}
		}
		block, err := enc.Finish()
		if err != nil {
			return wrapf("encodeAttributeValues", err)
		}
		w.WriteBytes(block)
	}
	return nil
}

// decodeAttributeValues is the inverse of encodeAttributeValues,
// reconstructing numValues numComponents-wide float vectors. It returns the
// scheme id Encode wrote so callers can assert it matches the scheme their
// predict/observe closures were built for.
func decodeAttributeValues(r *iobit.ByteReader, numValues, numComponents int, predict predictFunc, observe observeFunc) (prediction.Kind, [][]float64, error) {
	empty, err := r.ReadU8()
	if err != nil {
		return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
	}
	if empty == 1 {
		return prediction.NoPredictionKind, nil, nil
	}
	schemeByte, err := r.ReadU8()
	if err != nil {
		return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
	}
	transformByte, err := r.ReadU8()
	if err != nil {
		return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
	}
	schemeKind := prediction.Kind(schemeByte)
	transformKind := predtransform.Kind(transformByte)

	quantD, err := quantize.NewDecoder(r, numComponents)
	if err != nil {
		return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
	}
	transform, err := predtransform.NewDecoder(r, transformKind, numComponents)
	if err != nil {
		return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
	}

	corrections := make([][]uint32, numValues)
	for c := 0; c < numComponents; c++ {
		dec, err := entropy.NewRansSymbolDecoder(r, entropyPrecision)
		if err != nil {
			return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
		}
		for i := 0; i < numValues; i++ {
			sym, err := dec.Read()
			if err != nil {
				return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
			}
			if corrections[i] == nil {
				corrections[i] = make([]uint32, numComponents)
			}
			corrections[i][c] = uint32(sym)
		}
	}

	out := make([][]float64, numValues)
	for i := 0; i < numValues; i++ {
		pred := predict(i)
		quantized, err := transform.InverseMap(pred, corrections[i])
		if err != nil {
			return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
		}
		observe(i, quantized)
		vals, err := quantD.Dequantize(quantized)
		if err != nil {
			return prediction.InvalidKind, nil, wrapf("decodeAttributeValues", err)
		}
		v := make([]float64, numComponents)
		for ci, c := range vals {
			v[ci] = float64(c)
		}
		out[i] = v
	}
	return schemeKind, out, nil
}
