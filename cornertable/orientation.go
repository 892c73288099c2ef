package cornertable

import meshcore "github.com/dracogo/dracogo/core"

// CheckOrientable verifies that the table's input winding is globally
// consistent: starting from an arbitrary face, a BFS across Opposite links
// propagates a boolean "flip" sign to every reachable face, and any
// manifold edge whose two incident faces disagree on whether it should be
// traversed forward or reversed is a NonOrientable conflict. This is
// spec.md §4.D's "Orientation check... BFS assigns a boolean orientation
// per face; a conflict on any manifold edge is a fatal NonOrientable
// error" — required before Edgebreaker may run (spec.md §4.E's "For
// Edgebreaker the mesh must be orientable").
//
// Non-manifold edges (already broken to NoCorner by handleNonManifoldEdges
// during Build) take no part in the check: a broken edge carries no
// opposite link to propagate across.
func (t *Table) CheckOrientable() error {
	numFaces := t.NumFaces()
	if numFaces == 0 {
		return nil
	}
	visited := make([]bool, numFaces)
	flip := make([]bool, numFaces)

	for start := 0; start < numFaces; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			for local := 0; local < 3; local++ {
				c := meshcore.CornerIdx(3*fi + local)
				oc, ok := t.Opposite(c)
				if !ok {
					continue
				}
				nf := int(meshcore.FaceOf(oc))

				// The edge opposite c runs (next(c) -> previous(c)) in face
				// fi's winding. For the shared face to be wound
				// consistently it must traverse the same undirected edge
				// in the opposite direction: (next(oc) -> previous(oc))
				// must equal (previous(c) -> next(c)) under t.flip[fi].
				a, b := t.VertexIdx(t.Next(c)), t.VertexIdx(t.Previous(c))
				oa, ob := t.VertexIdx(t.Next(oc)), t.VertexIdx(t.Previous(oc))
				consistent := a == ob && b == oa
				wantFlip := flip[fi]
				if !consistent {
					wantFlip = !wantFlip
				}

				if visited[nf] {
					if flip[nf] != wantFlip {
						return wrapf("CheckOrientable", ErrNonOrientable)
					}
					continue
				}
				visited[nf] = true
				flip[nf] = wantFlip
				queue = append(queue, nf)
			}
		}
	}
	return nil
}
