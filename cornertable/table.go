package cornertable

import (
	meshcore "github.com/dracogo/dracogo/core"
)

// halfEdge is a pending (sink vertex, source corner) pair awaiting its
// opposite during the bucket-sweep of compute_table — the Go analogue of
// the Rust original's `vertex_edges: Vec<(VertexIdx, CornerIdx)>`.
type halfEdge struct {
	sink  meshcore.VertexIdx
	edgeC meshcore.CornerIdx
}

// Table is the corner table of one mesh's connectivity. It is built once by
// Build and is immutable thereafter; the Edgebreaker encoder and Spirale
// Reversi decoder both traverse it read-only.
type Table struct {
	connFaces       [][3]meshcore.VertexIdx
	oppositeCorners []meshcore.CornerIdx
	leftMostCorners []meshcore.CornerIdx
	cornerOverride  map[meshcore.CornerIdx]meshcore.VertexIdx // non-manifold vertex splits
	numVertices     int
	numCorners      int
	nonManifoldVertexParents []meshcore.VertexIdx
}

// Build constructs the corner table for mesh's connectivity, resolved
// against its Position attribute (each face's raw PointIdx triple is
// mapped through the Position attribute's unique-value index, per
// draco-oxide's `conn_faces`).
func Build(mesh *meshcore.Mesh) (*Table, error) {
	pos, err := mesh.PositionAttribute()
	if err != nil {
		return nil, wrapf("Build", ErrNoPositionAttribute)
	}

	connFaces := make([][3]meshcore.VertexIdx, len(mesh.Faces))
	for i, f := range mesh.Faces {
		connFaces[i] = [3]meshcore.VertexIdx{
			meshcore.VertexIdx(pos.UniqueValueIdx(int(f[0]))),
			meshcore.VertexIdx(pos.UniqueValueIdx(int(f[1]))),
			meshcore.VertexIdx(pos.UniqueValueIdx(int(f[2]))),
		}
	}

	if unused := findUnusedVertices(connFaces); len(unused) > 0 {
		return nil, wrapf("Build", ErrUnusedVertex)
	}

	t := &Table{
		connFaces:      connFaces,
		numCorners:     len(connFaces) * 3,
		cornerOverride: make(map[meshcore.CornerIdx]meshcore.VertexIdx),
	}
	t.computeTable()
	if containsNonManifoldEdges(connFaces) {
		t.handleNonManifoldEdges()
	}
	t.computeLeftMostCorners()
	if err := t.CheckOrientable(); err != nil {
		return nil, err
	}
	return t, nil
}

func findUnusedVertices(faces [][3]meshcore.VertexIdx) []meshcore.VertexIdx {
	maxV := -1
	for _, f := range faces {
		for _, v := range f {
			if int(v) > maxV {
				maxV = int(v)
			}
		}
	}
	if maxV < 0 {
		return nil
	}
	used := make([]bool, maxV+1)
	for _, f := range faces {
		for _, v := range f {
			used[int(v)] = true
		}
	}
	var out []meshcore.VertexIdx
	for i, u := range used {
		if !u {
			out = append(out, meshcore.VertexIdx(i))
		}
	}
	return out
}

func containsNonManifoldEdges(faces [][3]meshcore.VertexIdx) bool {
	type edge [2]meshcore.VertexIdx
	var edges []edge
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edges = append(edges, edge{a, b})
		}
	}
	seen := make(map[edge]int, len(edges))
	for _, e := range edges {
		seen[e]++
		if seen[e] > 2 {
			return true
		}
	}
	return false
}

// NumFaces returns the number of faces.
func (t *Table) NumFaces() int { return len(t.connFaces) }

// NumCorners returns 3*NumFaces().
func (t *Table) NumCorners() int { return t.numCorners }

// NumVertices returns the number of vertices, including any synthesized by
// non-manifold-vertex splitting during construction.
func (t *Table) NumVertices() int { return t.numVertices }

// FaceIdxContaining returns the face corner c belongs to.
func (t *Table) FaceIdxContaining(c meshcore.CornerIdx) meshcore.FaceIdx {
	return meshcore.FaceOf(c)
}

// VertexIdx returns the vertex at corner c, honoring any non-manifold split
// override recorded for c.
func (t *Table) VertexIdx(c meshcore.CornerIdx) meshcore.VertexIdx {
	if v, ok := t.cornerOverride[c]; ok {
		return v
	}
	local := int(c) % 3
	face := int(c) / 3
	return t.connFaces[face][local]
}

// Opposite returns the corner across the edge opposite c, or (NoCorner,
// false) if the edge is a boundary or was broken during non-manifold
// repair.
func (t *Table) Opposite(c meshcore.CornerIdx) (meshcore.CornerIdx, bool) {
	oc := t.oppositeCorners[c]
	if oc == meshcore.NoCorner {
		return meshcore.NoCorner, false
	}
	return oc, true
}

// Previous returns the corner preceding c within its face (cyclically).
func (t *Table) Previous(c meshcore.CornerIdx) meshcore.CornerIdx {
	n := int(c)
	if n%3 == 0 {
		return meshcore.CornerIdx(n + 2)
	}
	return meshcore.CornerIdx(n - 1)
}

// Next returns the corner following c within its face (cyclically).
func (t *Table) Next(c meshcore.CornerIdx) meshcore.CornerIdx {
	n := int(c)
	if n%3 == 2 {
		return meshcore.CornerIdx(n - 2)
	}
	return meshcore.CornerIdx(n + 1)
}

// LeftMostCorner returns the canonical seed corner recorded for vertex v.
func (t *Table) LeftMostCorner(v meshcore.VertexIdx) meshcore.CornerIdx {
	return t.leftMostCorners[v]
}

// SwingRight walks from c to the next corner sharing c's vertex, moving
// through the opposite of c's previous corner.
func (t *Table) SwingRight(c meshcore.CornerIdx) (meshcore.CornerIdx, bool) {
	oc, ok := t.Opposite(t.Previous(c))
	if !ok {
		return meshcore.NoCorner, false
	}
	return t.Previous(oc), true
}

// SwingLeft walks from c to the previous corner sharing c's vertex, moving
// through the opposite of c's next corner.
func (t *Table) SwingLeft(c meshcore.CornerIdx) (meshcore.CornerIdx, bool) {
	oc, ok := t.Opposite(t.Next(c))
	if !ok {
		return meshcore.NoCorner, false
	}
	return t.Next(oc), true
}

// IsOnBoundary reports whether vertex v lies on an open boundary (its fan
// of incident corners does not close).
func (t *Table) IsOnBoundary(v meshcore.VertexIdx) bool {
	_, ok := t.SwingLeft(t.LeftMostCorner(v))
	return !ok
}

// GetLeftCorner returns the corner to the left of c across its previous
// edge, if any.
func (t *Table) GetLeftCorner(c meshcore.CornerIdx) (meshcore.CornerIdx, bool) {
	return t.Opposite(t.Previous(c))
}

// GetRightCorner returns the corner to the right of c across its next
// edge, if any.
func (t *Table) GetRightCorner(c meshcore.CornerIdx) (meshcore.CornerIdx, bool) {
	return t.Opposite(t.Next(c))
}

// VertexValence returns the number of edges incident to v.
func (t *Table) VertexValence(v meshcore.VertexIdx) int {
	c := t.LeftMostCorner(v)
	count := 2
	for {
		next, ok := t.SwingRight(c)
		if !ok {
			break
		}
		if next == c {
			count--
			break
		}
		count++
		c = next
	}
	return count
}

// NonManifoldVertexParents returns, in synthesis order, the original vertex
// each synthesized (split-off) vertex was cloned from. Index i of the
// returned slice corresponds to vertex NumVertices()-len(...)+i.
func (t *Table) NonManifoldVertexParents() []meshcore.VertexIdx {
	return t.nonManifoldVertexParents
}
