package prediction

import (
	"math"

	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
)

// normalMagnitudeBound is the upper bound the summed one-ring cross
// products are clamped to before projection, carried over from
// mesh_normal_prediction.rs's "upper_bound = 1 << 29 ... from the draco
// library".
const normalMagnitudeBound = 1 << 29

// MeshNormalPrediction implements spec.md §4.G.6: it sums the cross
// products of the edges meeting at the current corner across its one-ring,
// projects the result onto the octahedron, quantises to bits-wide integers
// in the positive quadrant, and records a sign-flip bit chosen by whichever
// of the projection or its negation lands closer to the actual value.
//
// Grounded on draco-oxide's
// shared/attribute/prediction_scheme/mesh_normal_prediction.rs.
type MeshNormalPrediction struct {
	bits  int
	flips []bool
}

// NewMeshNormalPrediction returns a normal-prediction scheme quantising to
// bits-wide octahedral coordinates (8 is the original's working default).
func NewMeshNormalPrediction(bits int) *MeshNormalPrediction {
	return &MeshNormalPrediction{bits: bits}
}

func (p *MeshNormalPrediction) Kind() Kind { return NormalKind }

func (p *MeshNormalPrediction) faceNormal(t cornerTable, posLookup ValueLookup, posC []int32, c meshcore.CornerIdx) ([3]int64, bool) {
	nextV := t.VertexIdx(t.Next(c))
	prevV := t.VertexIdx(t.Previous(c))
	posNext, ok := posLookup(nextV)
	if !ok {
		return [3]int64{}, false
	}
	posPrev, ok := posLookup(prevV)
	if !ok {
		return [3]int64{}, false
	}
	dn := [3]int64{int64(posNext[0]) - int64(posC[0]), int64(posNext[1]) - int64(posC[1]), int64(posNext[2]) - int64(posC[2])}
	dp := [3]int64{int64(posPrev[0]) - int64(posC[0]), int64(posPrev[1]) - int64(posC[1]), int64(posPrev[2]) - int64(posC[2])}
	return [3]int64{
		dn[1]*dp[2] - dn[2]*dp[1],
		dn[2]*dp[0] - dn[0]*dp[2],
		dn[0]*dp[1] - dn[1]*dp[0],
	}, true
}

// computeRaw computes the unflipped octahedral-quantised prediction at
// corner, or ok=false if corner's vertex position is not yet decoded.
func (p *MeshNormalPrediction) computeRaw(t cornerTable, posLookup ValueLookup, corner meshcore.CornerIdx) ([2]int32, bool) {
	v := t.VertexIdx(corner)
	posC, ok := posLookup(v)
	if !ok {
		return [2]int32{}, false
	}
	sum, ok := p.faceNormal(t, posLookup, posC, corner)
	if !ok {
		sum = [3]int64{}
	}
	curr := corner
	for next, ok := t.SwingRight(curr); ok && next != corner; next, ok = t.SwingRight(next) {
		curr = next
		if fn, ok := p.faceNormal(t, posLookup, posC, curr); ok {
			sum[0] += fn[0]
			sum[1] += fn[1]
			sum[2] += fn[2]
		}
	}

	absSum := abs64(sum[0]) + abs64(sum[1]) + abs64(sum[2])
	if absSum > normalMagnitudeBound {
		q := absSum / normalMagnitudeBound
		if q < 1 {
			q = 1
		}
		sum[0] /= q
		sum[1] /= q
		sum[2] /= q
	}
	if sum == [3]int64{} {
		return [2]int32{0, 0}, true
	}

	u, v2 := octahedralProject(float64(sum[0]), float64(sum[1]), float64(sum[2]))
	scale := float64((uint32(1) << uint(p.bits)) - 1)
	qu := int32(math.Round((u + 1) * scale / 2))
	qv := int32(math.Round((v2 + 1) * scale / 2))
	return [2]int32{qu, qv}, true
}

// octahedralProject maps a 3D direction to the [-1,1]^2 octahedral plane.
func octahedralProject(x, y, z float64) (float64, float64) {
	absSum := math.Abs(x) + math.Abs(y) + math.Abs(z)
	if absSum == 0 {
		return 0, 0
	}
	px, py := x/absSum, y/absSum
	if z < 0 {
		ox, oy := px, py
		nx := (1 - math.Abs(oy)) * sign(ox)
		ny := (1 - math.Abs(ox)) * sign(oy)
		return nx, ny
	}
	return px, py
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// EncodePredict computes the prediction at corner and chooses whichever of
// it or its negation is closer to actual, recording the choice for
// EncodeMetadata.
func (p *MeshNormalPrediction) EncodePredict(t cornerTable, posLookup ValueLookup, corner meshcore.CornerIdx, actual []int32) []int32 {
	raw, ok := p.computeRaw(t, posLookup, corner)
	if !ok {
		p.flips = append(p.flips, false)
		return []int32{0, 0}
	}
	neg := [2]int32{-raw[0], -raw[1]}
	d1 := sqDist2(raw, [2]int32{actual[0], actual[1]})
	d2 := sqDist2(neg, [2]int32{actual[0], actual[1]})
	if d2 < d1 {
		p.flips = append(p.flips, true)
		return []int32{neg[0], neg[1]}
	}
	p.flips = append(p.flips, false)
	return []int32{raw[0], raw[1]}
}

// DecodePredict recomputes the unflipped prediction at corner and applies
// the next flip bit.
func (p *MeshNormalPrediction) DecodePredict(t cornerTable, posLookup ValueLookup, corner meshcore.CornerIdx, flip bool) []int32 {
	raw, ok := p.computeRaw(t, posLookup, corner)
	if !ok {
		return []int32{0, 0}
	}
	if flip {
		return []int32{-raw[0], -raw[1]}
	}
	return []int32{raw[0], raw[1]}
}

func sqDist2(a, b [2]int32) int64 {
	dx := int64(a[0]) - int64(b[0])
	dy := int64(a[1]) - int64(b[1])
	return dx*dx + dy*dy
}

// EncodeMetadata writes the accumulated flip-bit stream to w.
func (p *MeshNormalPrediction) EncodeMetadata(w *iobit.ByteWriter) error {
	return encodeBits(w, p.flips)
}

// DecodeMetadata reads n flip bits from r for later DecodePredict calls,
// which consume them via NextFlip.
func (p *MeshNormalPrediction) DecodeMetadata(r *iobit.ByteReader, n int) error {
	bits, err := decodeBits(r, n)
	if err != nil {
		return err
	}
	p.flips = bits
	return nil
}

// NextFlip pops the next decoded flip bit in traversal order.
func (p *MeshNormalPrediction) NextFlip() bool {
	b := p.flips[0]
	p.flips = p.flips[1:]
	return b
}
