package prediction

import (
	"math"

	meshcore "github.com/dracogo/dracogo/core"
)

// DerivativePrediction implements spec.md §4.G.7: a closed-form solver
// that decomposes the new vertex's 3D position, relative to an
// already-decoded triangle (a, b, diagonal), into the barycentric basis
// (u_pos = a-diagonal, v_pos = b-diagonal), then applies the same (s,t)
// coefficients to the triangle's known UV deltas to extrapolate the UV at
// the new vertex.
//
// Grounded on original_source's shared/attribute/prediction_scheme/
// derivative_prediction.rs, adapted from its face-scan search for the
// reference triangle to cornertable's ring-walk (the same adaptation
// MeshParallelogramPrediction makes), and from f64 to Go's math package.
type DerivativePrediction struct {
	numComponents int
}

// NewDerivativePrediction returns a derivative-prediction scheme for
// numComponents-wide (typically 2, texcoord) values.
func NewDerivativePrediction(numComponents int) *DerivativePrediction {
	return &DerivativePrediction{numComponents: numComponents}
}

func (p *DerivativePrediction) Kind() Kind { return DerivativeKind }

func (p *DerivativePrediction) firstTriangle(t cornerTable, uvLookup ValueLookup, corner meshcore.CornerIdx) (a, b, diag meshcore.VertexIdx, ok bool) {
	check := func(c meshcore.CornerIdx) (meshcore.VertexIdx, meshcore.VertexIdx, meshcore.VertexIdx, bool) {
		oc, ok2 := t.Opposite(c)
		if !ok2 {
			return 0, 0, 0, false
		}
		av := t.VertexIdx(t.Next(c))
		bv := t.VertexIdx(t.Previous(c))
		dv := t.VertexIdx(oc)
		if _, ok3 := uvLookup(av); !ok3 {
			return 0, 0, 0, false
		}
		if _, ok3 := uvLookup(bv); !ok3 {
			return 0, 0, 0, false
		}
		if _, ok3 := uvLookup(dv); !ok3 {
			return 0, 0, 0, false
		}
		return av, bv, dv, true
	}
	if av, bv, dv, ok := check(corner); ok {
		return av, bv, dv, true
	}
	for c, ok2 := t.SwingRight(corner); ok2 && c != corner; c, ok2 = t.SwingRight(c) {
		if av, bv, dv, ok := check(c); ok {
			return av, bv, dv, true
		}
	}
	for c, ok2 := t.SwingLeft(corner); ok2 && c != corner; c, ok2 = t.SwingLeft(c) {
		if av, bv, dv, ok := check(c); ok {
			return av, bv, dv, true
		}
	}
	return 0, 0, 0, false
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Predict implements the derivative solver; ok=false when no reference
// triangle with fully decoded UVs is available yet around corner's vertex.
func (p *DerivativePrediction) Predict(t cornerTable, posLookup, uvLookup ValueLookup, corner meshcore.CornerIdx) ([]int32, bool) {
	a, b, diag, ok := p.firstTriangle(t, uvLookup, corner)
	if !ok {
		return make([]int32, p.numComponents), false
	}
	posA, _ := posLookup(a)
	posB, _ := posLookup(b)
	posD, _ := posLookup(diag)
	posX, okX := posLookup(t.VertexIdx(corner))
	if !okX {
		return make([]int32, p.numComponents), false
	}
	uvA, _ := uvLookup(a)
	uvB, _ := uvLookup(b)
	uvD, _ := uvLookup(diag)

	uPos := sub3(vec3Of(posA), vec3Of(posD))
	vPos := sub3(vec3Of(posB), vec3Of(posD))
	deltaPos := sub3(vec3Of(posX), vec3Of(posD))

	normal := cross3(uPos, vPos)
	normNorm2 := dot3(normal, normal)
	if normNorm2 == 0 {
		return make([]int32, p.numComponents), false
	}
	s := -dot3(normal, deltaPos) / normNorm2
	proj := [3]float64{
		deltaPos[0] + normal[0]*s,
		deltaPos[1] + normal[1]*s,
		deltaPos[2] + normal[2]*s,
	}

	sCoef := dot3(cross3(proj, vPos), normal) / normNorm2
	tCoef := dot3(cross3(uPos, proj), normal) / normNorm2

	out := make([]int32, p.numComponents)
	for i := 0; i < p.numComponents; i++ {
		uTex := float64(uvA[i] - uvD[i])
		vTex := float64(uvB[i] - uvD[i])
		predicted := float64(uvD[i]) + uTex*sCoef + vTex*tCoef
		out[i] = int32(math.Round(predicted))
	}
	return out, true
}
