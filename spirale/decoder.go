package spirale

import (
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/edgebreaker"
)

// activeEdge is the gate edge currently being extended. By convention
// index 0 is the "lead" vertex (replaced by the next symbol) and index 1
// the "anchor" (carried forward unchanged by L/R/C continuations).
type activeEdge [2]int

// componentState is the per-connected-component replay state: the running
// face list (sorted-ascending vertex triples, winding assigned later by
// recoverOrientation), the current active edge, the pending stack of
// deferred continuations (populated by the seed triangle's spare edges and
// by every C), the boundary adjacency S rotates against, and the running
// decoded-vertex counter.
type componentState struct {
	faces    [][3]int
	active   activeEdge
	pending  []activeEdge
	boundary *boundarySet
	numVerts int
}

func sorted3(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// bootstrap seeds a component exactly as edgebreaker.encodeComponent does:
// three fresh vertices and a triangle, consuming no symbol. Two of its
// three edges are pushed onto pending for later resumption; the third
// becomes the initial active edge.
func (cs *componentState) bootstrap() {
	n0, n1, n2 := cs.numVerts, cs.numVerts+1, cs.numVerts+2
	cs.faces = append(cs.faces, sorted3(n0, n1, n2))
	cs.boundary.add(n0, n1)
	cs.boundary.add(n1, n2)
	cs.boundary.add(n2, n0)
	cs.active = activeEdge{n0, n1}
	cs.pending = append(cs.pending, activeEdge{n1, n2}, activeEdge{n2, n0})
	cs.numVerts += 3
}

func (cs *componentState) popPending() (activeEdge, bool) {
	if len(cs.pending) == 0 {
		return activeEdge{}, false
	}
	e := cs.pending[len(cs.pending)-1]
	cs.pending = cs.pending[:len(cs.pending)-1]
	return e, true
}

// doC allocates a new vertex and keeps both of its new edges on the gate:
// one resumes immediately as the new active edge, the other is deferred.
func (cs *componentState) doC() {
	a0, a1 := cs.active[0], cs.active[1]
	n := cs.numVerts
	cs.faces = append(cs.faces, sorted3(a0, a1, n))
	cs.boundary.remove(a0, a1)
	cs.boundary.add(a0, n)
	cs.boundary.add(n, a1)
	cs.pending = append(cs.pending, activeEdge{a0, n})
	cs.active = activeEdge{n, a1}
	cs.numVerts++
}

// doL allocates a new vertex; the lead-side edge continues, the
// anchor-side edge is a true mesh boundary and is discarded.
func (cs *componentState) doL() {
	a0, a1 := cs.active[0], cs.active[1]
	n := cs.numVerts
	cs.faces = append(cs.faces, sorted3(a0, a1, n))
	cs.boundary.remove(a0, a1)
	cs.boundary.add(a0, n)
	cs.active = activeEdge{a0, n}
	cs.numVerts++
}

// doR mirrors doL on the anchor side.
func (cs *componentState) doR() {
	a0, a1 := cs.active[0], cs.active[1]
	n := cs.numVerts
	cs.faces = append(cs.faces, sorted3(a0, a1, n))
	cs.boundary.remove(a0, a1)
	cs.boundary.add(n, a1)
	cs.active = activeEdge{n, a1}
	cs.numVerts++
}

// doE allocates a new vertex but neither of its edges continue (both are
// true mesh boundary); the thread dead-ends and the caller must resume
// from the pending stack.
func (cs *componentState) doE() {
	a0, a1 := cs.active[0], cs.active[1]
	n := cs.numVerts
	cs.faces = append(cs.faces, sorted3(a0, a1, n))
	cs.boundary.remove(a0, a1)
	cs.numVerts++
}

// doS reconnects to an already-decoded vertex found by rotating the gate
// around the active edge's lead vertex, clipping it off the boundary.
func (cs *componentState) doS() error {
	a0, a1 := cs.active[0], cs.active[1]
	next, ok := cs.boundary.other(a0, a1)
	if !ok {
		return wrapf("doS", ErrBoundaryRotationFailed)
	}
	cs.faces = append(cs.faces, sorted3(a0, a1, next))
	cs.boundary.remove(a0, a1)
	cs.boundary.remove(a0, next)
	cs.boundary.add(a1, next)
	cs.active = activeEdge{a1, next}
	return nil
}

// decodeComponent replays one component's symbol slice in reverse order,
// per spec.md §4.F.
func decodeComponent(symbols []edgebreaker.Symbol) (*componentState, error) {
	cs := &componentState{boundary: newBoundarySet()}
	cs.bootstrap()

	for i := len(symbols) - 1; i >= 0; i-- {
		switch symbols[i] {
		case edgebreaker.SymbolC:
			cs.doC()
		case edgebreaker.SymbolL:
			cs.doL()
		case edgebreaker.SymbolR:
			cs.doR()
		case edgebreaker.SymbolE:
			cs.doE()
			if i > 0 {
				next, ok := cs.popPending()
				if !ok {
					return nil, wrapf("decodeComponent", ErrPendingUnderflow)
				}
				cs.active = next
			}
		case edgebreaker.SymbolS:
			if err := cs.doS(); err != nil {
				return nil, err
			}
		default:
			return nil, wrapf("decodeComponent", ErrInvalidSymbol)
		}
	}
	return cs, nil
}

// Decode inverts edgebreaker.Encode's Result, reconstructing the mesh's
// faces. Decoded vertex ids are freshly assigned per spec.md §9's
// orientation-recovery open question: the returned faces are a
// permutation-equivalent triangulation of the original, not identical ids,
// and carry a consistent but possibly globally flipped winding relative to
// the input mesh. InteriorBits is not consulted: a seed edge that is never
// popped off the pending stack before its component's symbols run out was
// always a true mesh boundary edge, so per-edge boundary status falls out
// of the replay itself rather than needing to be looked up in advance.
func Decode(r *edgebreaker.Result) ([]meshcore.Face, error) {
	if len(r.ComponentSymbolCounts) == 0 {
		return nil, wrapf("Decode", ErrEmptyStream)
	}

	var allFaces [][3]int
	offset := 0
	start := 0
	for _, count := range r.ComponentSymbolCounts {
		end := start + count
		cs, err := decodeComponent(r.Symbols[start:end])
		if err != nil {
			return nil, err
		}
		start = end

		for _, f := range cs.faces {
			allFaces = append(allFaces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}
		offset += cs.numVerts
	}

	signs := recoverOrientation(allFaces)
	out := make([]meshcore.Face, len(allFaces))
	for i, f := range allFaces {
		if !signs[i] {
			f[1], f[2] = f[2], f[1]
		}
		out[i] = meshcore.Face{
			meshcore.PointIdx(f[0]),
			meshcore.PointIdx(f[1]),
			meshcore.PointIdx(f[2]),
		}
	}
	return out, nil
}
