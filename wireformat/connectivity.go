package wireformat

import (
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/edgebreaker"
	"github.com/dracogo/dracogo/iobit"
)

// traversalStandard is the only traversal type this package writes, per
// spec.md §9's explicit guidance that Valence traversal is out of scope.
const traversalStandard uint8 = 0

// EncodeEdgebreaker writes the connectivity section for a mesh encoded via
// Edgebreaker/Spirale Reversi, per spec.md §6: vertex/face counts, the
// per-component symbol counts, every topology split, the packed CLERS
// stream, per-component interior-face bits, and the vertex traversal order
// (draco's attribute lockstep requirement, spec.md §5, needs this to know
// which original vertex each newly-decoded vertex id corresponds to).
func EncodeEdgebreaker(w *iobit.ByteWriter, numVertices, numFaces int, result *edgebreaker.Result) {
	w.WriteLEB128(uint64(numVertices))
	w.WriteLEB128(uint64(numFaces))
	w.WriteU8(traversalStandard)

	w.WriteLEB128(uint64(len(result.ComponentSymbolCounts)))
	for _, c := range result.ComponentSymbolCounts {
		w.WriteLEB128(uint64(c))
	}

	w.WriteLEB128(uint64(len(result.Splits)))
	for _, s := range result.Splits {
		w.WriteLEB128(uint64(s.SourceSymbolId))
		w.WriteLEB128(uint64(s.SplitSymbolId))
		w.WriteU8(uint8(s.SourceSide))
	}

	symbolBytes := result.EncodeBytes()
	w.WriteLEB128(uint64(len(result.Symbols)))
	w.WriteLEB128(uint64(len(symbolBytes)))
	w.WriteBytes(symbolBytes)

	bw := iobit.NewBitWriter(w)
	for _, b := range result.InteriorBits {
		bit := uint8(0)
		if b {
			bit = 1
		}
		bw.WriteBit(bit)
	}
	bw.Release()

	w.WriteLEB128(uint64(len(result.VertexOrder)))
	for _, v := range result.VertexOrder {
		w.WriteLEB128(uint64(v))
	}
}

// DecodeEdgebreaker is the inverse of EncodeEdgebreaker.
func DecodeEdgebreaker(r *iobit.ByteReader) (numVertices, numFaces int, result *edgebreaker.Result, err error) {
	nv, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	nf, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	if _, err := r.ReadU8(); err != nil { // traversal type; only Standard is supported
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}

	numComponents, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	componentCounts := make([]int, numComponents)
	for i := range componentCounts {
		c, err := r.ReadLEB128()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		componentCounts[i] = int(c)
	}

	numSplits, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	splits := make([]edgebreaker.TopologySplit, numSplits)
	for i := range splits {
		src, err := r.ReadLEB128()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		split, err := r.ReadLEB128()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		side, err := r.ReadU8()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		splits[i] = edgebreaker.TopologySplit{
			SourceSymbolId: int(src),
			SplitSymbolId:  int(split),
			SourceSide:     edgebreaker.Side(side),
		}
	}

	numSymbols, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	symbolByteLen, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	symbolBytes, err := r.ReadBytes(int(symbolByteLen))
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	symbols, err := edgebreaker.DecodeBytes(symbolBytes, int(numSymbols))
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}

	br := iobit.NewBitReader(r)
	interiorBits := make([]bool, numComponents)
	for i := range interiorBits {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		interiorBits[i] = bit == 1
	}
	br.Release()

	vertexOrderLen, err := r.ReadLEB128()
	if err != nil {
		return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
	}
	vertexOrder := make([]meshcore.VertexIdx, vertexOrderLen)
	for i := range vertexOrder {
		v, err := r.ReadLEB128()
		if err != nil {
			return 0, 0, nil, wrapf("DecodeEdgebreaker", err)
		}
		vertexOrder[i] = meshcore.VertexIdx(v)
	}

	return int(nv), int(nf), &edgebreaker.Result{
		Symbols:               symbols,
		InteriorBits:          interiorBits,
		Splits:                splits,
		ComponentSymbolCounts: componentCounts,
		VertexOrder:           vertexOrder,
	}, nil
}

// EncodeSequential writes the connectivity section for SPEC_FULL.md's
// supplemented fallback: a plain triangle list, no connectivity
// compression, for meshes cornertable.Build/edgebreaker.Encode cannot
// handle.
func EncodeSequential(w *iobit.ByteWriter, numVertices int, faces []meshcore.Face) {
	w.WriteLEB128(uint64(numVertices))
	w.WriteLEB128(uint64(len(faces)))
	for _, f := range faces {
		w.WriteLEB128(uint64(f[0]))
		w.WriteLEB128(uint64(f[1]))
		w.WriteLEB128(uint64(f[2]))
	}
}

// DecodeSequential is the inverse of EncodeSequential.
func DecodeSequential(r *iobit.ByteReader) (numVertices int, faces []meshcore.Face, err error) {
	nv, err := r.ReadLEB128()
	if err != nil {
		return 0, nil, wrapf("DecodeSequential", err)
	}
	nf, err := r.ReadLEB128()
	if err != nil {
		return 0, nil, wrapf("DecodeSequential", err)
	}
	out := make([]meshcore.Face, nf)
	for i := range out {
		a, err := r.ReadLEB128()
		if err != nil {
			return 0, nil, wrapf("DecodeSequential", err)
		}
		b, err := r.ReadLEB128()
		if err != nil {
			return 0, nil, wrapf("DecodeSequential", err)
		}
		c, err := r.ReadLEB128()
		if err != nil {
			return 0, nil, wrapf("DecodeSequential", err)
		}
		out[i] = meshcore.Face{meshcore.PointIdx(a), meshcore.PointIdx(b), meshcore.PointIdx(c)}
	}
	return int(nv), out, nil
}
