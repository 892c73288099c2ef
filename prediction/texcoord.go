package prediction

import (
	"math"

	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
)

// MeshPredictionForTextureCoordinates implements spec.md §4.G.5: it
// projects the new vertex onto the plane of the already-decoded triangle
// formed by corner's next/previous vertices, decomposes the in-plane
// displacement into the basis of their known UV deltas, and produces two
// UV candidates 90° apart; the encoder records which is closer to the
// actual value as an orientation bit.
//
// Grounded on draco-oxide's shared/attribute/prediction_scheme/
// mesh_prediction_for_texture_coordinates.rs, simplified to float64
// arithmetic: the original's chain of i64 overflow guards (falling back to
// fallbackPredict when a multiply would overflow i64) has no equivalent
// failure mode once the geometry is carried in float64, so those guard
// branches are not reproduced — only the geometric derivation and its
// fallback-when-ungeometric behaviour are.
type MeshPredictionForTextureCoordinates struct {
	orientation []bool
	fallback    []int32
}

// NewMeshPredictionForTextureCoordinates returns a texcoord-prediction
// scheme.
func NewMeshPredictionForTextureCoordinates() *MeshPredictionForTextureCoordinates {
	return &MeshPredictionForTextureCoordinates{}
}

func (p *MeshPredictionForTextureCoordinates) Kind() Kind { return TexCoordKind }

// Observe records the true value of the vertex just processed, used by the
// "most recently processed vertex" fallback.
func (p *MeshPredictionForTextureCoordinates) Observe(v []int32) {
	p.fallback = append([]int32(nil), v...)
}

func vec3Of(v []int32) [3]float64 { return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])} }
func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (p *MeshPredictionForTextureCoordinates) computeCandidates(t cornerTable, posLookup, uvLookup ValueLookup, corner meshcore.CornerIdx) (uv0, uv1 [2]int32, ok bool) {
	nextV := t.VertexIdx(t.Next(corner))
	prevV := t.VertexIdx(t.Previous(corner))
	currV := t.VertexIdx(corner)

	posNextI, ok1 := posLookup(nextV)
	posPrevI, ok2 := posLookup(prevV)
	posCurrI, ok3 := posLookup(currV)
	uvNextI, ok4 := uvLookup(nextV)
	uvPrevI, ok5 := uvLookup(prevV)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return uv0, uv1, false
	}

	if uvNextI[0] == uvPrevI[0] && uvNextI[1] == uvPrevI[1] {
		return uvPrevI2(uvPrevI), uvPrevI2(uvPrevI), true
	}

	posNext, posPrev, posCurr := vec3Of(posNextI), vec3Of(posPrevI), vec3Of(posCurrI)
	uvNext := [2]float64{float64(uvNextI[0]), float64(uvNextI[1])}
	uvPrev := [2]float64{float64(uvPrevI[0]), float64(uvPrevI[1])}

	pn := sub3(posPrev, posNext)
	pnNorm2 := dot3(pn, pn)
	if pnNorm2 == 0 {
		return uv0, uv1, false
	}
	cn := sub3(posCurr, posNext)
	cnDotPn := dot3(pn, cn)
	pnUV := [2]float64{uvPrev[0] - uvNext[0], uvPrev[1] - uvNext[1]}

	xUV := [2]float64{
		uvNext[0]*pnNorm2 + pnUV[0]*cnDotPn,
		uvNext[1]*pnNorm2 + pnUV[1]*cnDotPn,
	}
	xPos := [3]float64{
		posNext[0] + pn[0]*cnDotPn/pnNorm2,
		posNext[1] + pn[1]*cnDotPn/pnNorm2,
		posNext[2] + pn[2]*cnDotPn/pnNorm2,
	}
	cxDelta := sub3(posCurr, xPos)
	cxNorm2 := dot3(cxDelta, cxDelta)
	scale := math.Sqrt(cxNorm2 * pnNorm2)
	cxUV := [2]float64{pnUV[1] * scale, -pnUV[0] * scale}

	cand0 := [2]float64{(xUV[0] + cxUV[0]) / pnNorm2, (xUV[1] + cxUV[1]) / pnNorm2}
	cand1 := [2]float64{(xUV[0] - cxUV[0]) / pnNorm2, (xUV[1] - cxUV[1]) / pnNorm2}

	round := func(v [2]float64) [2]int32 {
		return [2]int32{int32(math.Round(v[0])), int32(math.Round(v[1]))}
	}
	return round(cand0), round(cand1), true
}

func uvPrevI2(v []int32) [2]int32 { return [2]int32{v[0], v[1]} }

func (p *MeshPredictionForTextureCoordinates) fallbackPredict(t cornerTable, uvLookup ValueLookup, corner meshcore.CornerIdx) []int32 {
	nextV := t.VertexIdx(t.Next(corner))
	if v, ok := uvLookup(nextV); ok {
		return append([]int32(nil), v...)
	}
	if p.fallback != nil {
		return append([]int32(nil), p.fallback...)
	}
	return []int32{0, 0}
}

// EncodePredict computes the geometric prediction (or falls back) and
// records which orientation, if any, was chosen.
func (p *MeshPredictionForTextureCoordinates) EncodePredict(t cornerTable, posLookup, uvLookup ValueLookup, corner meshcore.CornerIdx, actual []int32) []int32 {
	uv0, uv1, ok := p.computeCandidates(t, posLookup, uvLookup, corner)
	if !ok {
		return p.fallbackPredict(t, uvLookup, corner)
	}
	d0 := sqDist2(uv0, [2]int32{actual[0], actual[1]})
	d1 := sqDist2(uv1, [2]int32{actual[0], actual[1]})
	if d0 <= d1 {
		p.orientation = append(p.orientation, true)
		return []int32{uv0[0], uv0[1]}
	}
	p.orientation = append(p.orientation, false)
	return []int32{uv1[0], uv1[1]}
}

// DecodePredict mirrors EncodePredict, consuming the next orientation bit
// only when the geometric derivation applies.
func (p *MeshPredictionForTextureCoordinates) DecodePredict(t cornerTable, posLookup, uvLookup ValueLookup, corner meshcore.CornerIdx, orientation bool) []int32 {
	uv0, uv1, ok := p.computeCandidates(t, posLookup, uvLookup, corner)
	if !ok {
		return p.fallbackPredict(t, uvLookup, corner)
	}
	if orientation {
		return []int32{uv0[0], uv0[1]}
	}
	return []int32{uv1[0], uv1[1]}
}

// NeedsOrientationBit reports whether the last computeCandidates call (via
// EncodePredict/DecodePredict) used the geometric derivation, i.e. whether
// an orientation bit was or must be consumed for that vertex. Callers
// invoke this immediately after EncodePredict/DecodePredict for the same
// corner.
func (p *MeshPredictionForTextureCoordinates) NeedsOrientationBit(t cornerTable, posLookup, uvLookup ValueLookup, corner meshcore.CornerIdx) bool {
	_, _, ok := p.computeCandidates(t, posLookup, uvLookup, corner)
	return ok
}

// EncodeMetadata writes the accumulated orientation-bit stream to w.
func (p *MeshPredictionForTextureCoordinates) EncodeMetadata(w *iobit.ByteWriter) error {
	w.WriteU32(uint32(len(p.orientation)))
	return encodeBits(w, p.orientation)
}

// DecodeMetadata reads the orientation-bit stream from r.
func (p *MeshPredictionForTextureCoordinates) DecodeMetadata(r *iobit.ByteReader) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	bits, err := decodeBits(r, int(n))
	if err != nil {
		return err
	}
	p.orientation = bits
	return nil
}

// NextOrientation pops the next decoded orientation bit in traversal order.
func (p *MeshPredictionForTextureCoordinates) NextOrientation() bool {
	b := p.orientation[0]
	p.orientation = p.orientation[1:]
	return b
}
