package edgebreaker

import (
	"github.com/dracogo/dracogo/cornertable"
	meshcore "github.com/dracogo/dracogo/core"
)

// Result holds everything one Encode call over a corner table produces.
type Result struct {
	// Symbols is the CLERS stream in the order emitted (forward/encoding
	// order; Spirale Reversi consumes it reversed).
	Symbols []Symbol
	// InteriorBits holds one bit per connected component, in the order its
	// start face was chosen: true when the start face's three opposite
	// links all exist.
	InteriorBits []bool
	// Splits holds every TopologySplit recorded across the whole table.
	Splits []TopologySplit
	// ComponentSymbolCounts holds, per connected component in the same
	// order as InteriorBits, how many entries of Symbols belong to it.
	// Spirale Reversi needs this to slice the concatenated stream back
	// into independently-reversible per-component chunks.
	ComponentSymbolCounts []int
	// VertexOrder is the traversal order prediction schemes consume: the
	// three vertices of each component's start face in CCW order, then
	// each newly visited vertex in the order the C, L, R or E symbol that
	// reaches it is emitted.
	VertexOrder []meshcore.VertexIdx
}

// EncodeBytes packs Symbols per spec.md §6's default (non-rANS) bit
// encoding.
func (r *Result) EncodeBytes() []byte { return encodeSymbols(r.Symbols) }

// DecodeBytes is the inverse of EncodeBytes: it unpacks exactly n symbols
// from buf. Callers (wireformat) reconstruct a Result's Symbols field from
// the wire this way before handing it to spirale.Decode.
func DecodeBytes(buf []byte, n int) ([]Symbol, error) {
	return decodeSymbols(buf, n)
}

type encoderState struct {
	t               *cornertable.Table
	visitedVertices []bool
	visitedFaces    []bool
	visitedAtSymbol []int // per-vertex symbol id that first visited it, -1 if unvisited
	result          Result
}

// Encode walks every connected component of t and returns its Edgebreaker
// encoding, per spec.md §4.E.
func Encode(t *cornertable.Table) (*Result, error) {
	if t.NumFaces() == 0 {
		return nil, wrapf("Encode", ErrEmptyTable)
	}

	st := &encoderState{
		t:               t,
		visitedVertices: make([]bool, t.NumVertices()),
		visitedFaces:    make([]bool, t.NumFaces()),
		visitedAtSymbol: make([]int, t.NumVertices()),
	}
	for i := range st.visitedAtSymbol {
		st.visitedAtSymbol[i] = -1
	}

	for startFace := 0; startFace < t.NumFaces(); startFace++ {
		if st.visitedFaces[startFace] {
			continue
		}
		before := len(st.result.Symbols)
		st.encodeComponent(meshcore.FaceIdx(startFace))
		st.result.ComponentSymbolCounts = append(st.result.ComponentSymbolCounts, len(st.result.Symbols)-before)
	}
	return &st.result, nil
}

// markVertex records v as visited at the current (about to be appended)
// symbol id and appends it to the traversal order.
func (st *encoderState) markVertex(v meshcore.VertexIdx, symbolID int) {
	st.visitedVertices[v] = true
	st.visitedAtSymbol[v] = symbolID
	st.result.VertexOrder = append(st.result.VertexOrder, v)
}

func (st *encoderState) encodeComponent(startFace meshcore.FaceIdx) {
	t := st.t
	c0 := meshcore.FirstCorner(startFace)
	c1, c2 := t.Next(c0), t.Previous(c0)

	v0, v1, v2 := t.VertexIdx(c0), t.VertexIdx(c1), t.VertexIdx(c2)
	st.visitedFaces[startFace] = true
	nextSymbolID := len(st.result.Symbols)
	st.markVertex(v0, nextSymbolID)
	st.markVertex(v1, nextSymbolID)
	st.markVertex(v2, nextSymbolID)

	oc0, ok0 := t.Opposite(c0)
	oc1, ok1 := t.Opposite(c1)
	oc2, ok2 := t.Opposite(c2)
	st.result.InteriorBits = append(st.result.InteriorBits, ok0 && ok1 && ok2)

	var stack []meshcore.CornerIdx
	if ok0 {
		stack = append(stack, oc0)
	}
	if ok1 {
		stack = append(stack, oc1)
	}
	if ok2 {
		stack = append(stack, oc2)
	}
	st.run(stack)
}

// run drains the active-corner stack for one connected component, per
// spec.md §4.E.2. Both C and S can have two live continuations (C when
// neither of its new vertex's edges is a mesh boundary, S when the
// reconnected vertex's far side also continues); each pushes its right
// branch onto the stack for later and tail-continues into its left branch
// directly instead of round-tripping both through the stack.
func (st *encoderState) run(stack []meshcore.CornerIdx) {
	t := st.t
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

	faceLoop:
		for {
			face := meshcore.FaceOf(c)
			if st.visitedFaces[face] {
				break faceLoop
			}

			v := t.VertexIdx(c)
			leftC, leftOk := t.Opposite(t.Previous(c))
			rightC, rightOk := t.Opposite(t.Next(c))

			if st.visitedVertices[v] {
				st.visitedFaces[face] = true
				symbolID := len(st.result.Symbols)
				st.result.Symbols = append(st.result.Symbols, SymbolS)

				if rightOk {
					st.result.Splits = append(st.result.Splits, TopologySplit{
						SourceSymbolId: st.visitedAtSymbol[v],
						SplitSymbolId:  symbolID,
						SourceSide:     SideRight,
					})
					stack = append(stack, rightC)
				} else if leftOk {
					st.result.Splits = append(st.result.Splits, TopologySplit{
						SourceSymbolId: st.visitedAtSymbol[v],
						SplitSymbolId:  symbolID,
						SourceSide:     SideLeft,
					})
				}
				if leftOk {
					c = leftC
					continue faceLoop
				}
				break faceLoop
			}

			st.visitedFaces[face] = true
			symbolID := len(st.result.Symbols)

			switch {
			case !leftOk && !rightOk:
				st.result.Symbols = append(st.result.Symbols, SymbolE)
				st.markVertex(v, symbolID)
				break faceLoop

			case leftOk && !rightOk:
				st.result.Symbols = append(st.result.Symbols, SymbolL)
				st.markVertex(v, symbolID)
				c = leftC
				continue faceLoop

			case !leftOk && rightOk:
				st.result.Symbols = append(st.result.Symbols, SymbolR)
				st.markVertex(v, symbolID)
				c = rightC
				continue faceLoop

			default: // both present
				st.result.Symbols = append(st.result.Symbols, SymbolC)
				st.markVertex(v, symbolID)
				stack = append(stack, rightC)
				c = leftC
				continue faceLoop
			}
		}
	}
}
