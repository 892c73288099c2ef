package prediction

import meshcore "github.com/dracogo/dracogo/core"

// ValueLookup returns the already-decoded attribute value for vertex v, and
// whether it has been processed yet in traversal order. Encode and decode
// both satisfy this with a plain slice-backed closure: encode because every
// original value is known upfront (the scheme itself enforces lock-step
// ordering by only consulting vertices strictly before the current one),
// decode because values are filled in as they are produced.
type ValueLookup func(v meshcore.VertexIdx) ([]int32, bool)

// cornerTable is the subset of *cornertable.Table a prediction scheme
// needs. Schemes depend on this interface rather than the concrete type so
// tests can supply a minimal fake table.
type cornerTable interface {
	VertexIdx(c meshcore.CornerIdx) meshcore.VertexIdx
	Next(c meshcore.CornerIdx) meshcore.CornerIdx
	Previous(c meshcore.CornerIdx) meshcore.CornerIdx
	Opposite(c meshcore.CornerIdx) (meshcore.CornerIdx, bool)
	SwingLeft(c meshcore.CornerIdx) (meshcore.CornerIdx, bool)
	SwingRight(c meshcore.CornerIdx) (meshcore.CornerIdx, bool)
}

// parallelogram is one candidate prediction a+b-diagonal gathered around
// the corner being predicted.
type parallelogram struct {
	a, b, diagonal []int32
}

// parallelogramCandidates walks the fan of corners sharing corner's vertex
// (both swing directions, matching cornertable's own ring-walk idiom used
// by Table.VertexValence) and, for each fan corner whose opposite exists
// and is fully decoded, records the a+b-diagonal candidate described by
// spec.md §4.G.3: a and b are the fan corner's next/previous vertices (the
// shared edge), diagonal is the third vertex of the face across that edge.
func parallelogramCandidates(t cornerTable, lookup ValueLookup, corner meshcore.CornerIdx) []parallelogram {
	var out []parallelogram
	seen := map[meshcore.CornerIdx]bool{}

	collect := func(c meshcore.CornerIdx) {
		if seen[c] {
			return
		}
		seen[c] = true
		oc, ok := t.Opposite(c)
		if !ok {
			return
		}
		av := t.VertexIdx(t.Next(c))
		bv := t.VertexIdx(t.Previous(c))
		dv := t.VertexIdx(oc)
		a, aok := lookup(av)
		b, bok := lookup(bv)
		d, dok := lookup(dv)
		if !aok || !bok || !dok {
			return
		}
		out = append(out, parallelogram{a: a, b: b, diagonal: d})
	}

	collect(corner)
	for c, ok := t.SwingRight(corner); ok && c != corner; c, ok = t.SwingRight(c) {
		collect(c)
	}
	for c, ok := t.SwingLeft(corner); ok && c != corner; c, ok = t.SwingLeft(c) {
		collect(c)
	}
	return out
}
