package cornertable

import meshcore "github.com/dracogo/dracogo/core"

// computeTable resolves oppositeCorners by sweeping each vertex's incident
// half-edges through a per-vertex bucket, pairing a half-edge (source,
// sink) with its mirror (sink, source) the first time both have been seen.
// Grounded on draco-oxide's CornerTable::compute_table.
func (t *Table) computeTable() {
	numCorners := t.numCorners
	t.oppositeCorners = make([]meshcore.CornerIdx, numCorners)
	for i := range t.oppositeCorners {
		t.oppositeCorners[i] = meshcore.NoCorner
	}

	maxVertex := -1
	for _, f := range t.connFaces {
		for _, v := range f {
			if int(v) > maxVertex {
				maxVertex = int(v)
			}
		}
	}
	numBaseVertices := maxVertex + 1

	countPerVertex := make([]int, numBaseVertices)
	for c := 0; c < numCorners; c++ {
		countPerVertex[int(t.VertexIdx(meshcore.CornerIdx(c)))]++
	}

	offsetOf := make([]int, numBaseVertices)
	offset := 0
	for v := 0; v < numBaseVertices; v++ {
		offsetOf[v] = offset
		offset += countPerVertex[v]
	}

	edges := make([]halfEdge, numCorners)
	for i := range edges {
		edges[i] = halfEdge{sink: meshcore.NoVertex, edgeC: meshcore.NoCorner}
	}

	for ci := 0; ci < numCorners; ci++ {
		c := meshcore.CornerIdx(ci)
		tipV := t.VertexIdx(c)
		sourceV := t.VertexIdx(t.Next(c))
		sinkV := t.VertexIdx(t.Previous(c))

		face := t.FaceIdxContaining(c)
		if c == meshcore.FirstCorner(face) {
			v0 := tipV
			if v0 == sourceV || v0 == sinkV || sourceV == sinkV {
				continue // degenerate corner
			}
		}

		var (
			opp       = meshcore.NoCorner
			foundOpp  bool
			bucketLen = countPerVertex[int(sinkV)]
			base      = offsetOf[int(sinkV)]
		)
		for i := 0; i < bucketLen; i++ {
			slot := base + i
			other := edges[slot].sink
			if other == meshcore.NoVertex {
				break
			}
			if other == sourceV {
				if tipV == t.VertexIdx(edges[slot].edgeC) {
					continue
				}
				opp = edges[slot].edgeC
				foundOpp = true
				for j := i + 1; j < bucketLen; j++ {
					edges[base+j-1] = edges[base+j]
					if edges[base+j-1].sink == meshcore.NoVertex {
						break
					}
				}
				edges[base+bucketLen-1] = halfEdge{sink: meshcore.NoVertex, edgeC: meshcore.NoCorner}
				break
			}
		}

		if !foundOpp {
			srcBase := offsetOf[int(sourceV)]
			srcLen := countPerVertex[int(sourceV)]
			for i := 0; i < srcLen; i++ {
				if edges[srcBase+i].sink == meshcore.NoVertex {
					edges[srcBase+i] = halfEdge{sink: sinkV, edgeC: c}
					break
				}
			}
		} else {
			t.oppositeCorners[c] = opp
			t.oppositeCorners[opp] = c
		}
	}

	t.numVertices = numBaseVertices
}

// handleNonManifoldEdges breaks connectivity at every edge shared by more
// than two faces, iterating until no more breaks are found. Grounded on
// draco-oxide's handle_no_manifold_edges.
func (t *Table) handleNonManifoldEdges() {
	visited := make([]bool, t.numCorners)
	type sinkEntry struct {
		v meshcore.VertexIdx
		c meshcore.CornerIdx
	}

	for {
		updated := false
		for ci := 0; ci < t.numCorners; ci++ {
			c := meshcore.CornerIdx(ci)
			if visited[c] {
				continue
			}

			firstC, currC := c, c
			for {
				next, ok := t.SwingLeft(currC)
				if !ok || next == firstC || visited[next] {
					break
				}
				currC = next
			}
			firstC = currC

			var sinkVertices []sinkEntry
			for {
				visited[currC] = true
				sinkC := t.Next(currC)
				sinkV := t.VertexIdx(sinkC)
				edgeC := t.Previous(currC)

				vertexUpdated := false
				for _, s := range sinkVertices {
					if s.v != sinkV {
						continue
					}
					otherEdgeC := s.c
					oppEdgeC, hasOppEdge := t.Opposite(edgeC)
					if hasOppEdge && oppEdgeC == otherEdgeC {
						continue
					}
					oppOtherEdgeC, hasOppOther := t.Opposite(otherEdgeC)
					if hasOppEdge {
						t.oppositeCorners[oppEdgeC] = meshcore.NoCorner
					}
					if hasOppOther {
						t.oppositeCorners[oppOtherEdgeC] = meshcore.NoCorner
					}
					t.oppositeCorners[edgeC] = meshcore.NoCorner
					t.oppositeCorners[otherEdgeC] = meshcore.NoCorner
					vertexUpdated = true
					break
				}
				if vertexUpdated {
					updated = true
					break
				}

				sinkVertices = append(sinkVertices, sinkEntry{v: t.VertexIdx(t.Previous(currC)), c: sinkC})

				next, ok := t.SwingRight(currC)
				if !ok {
					break
				}
				currC = next
				if currC == firstC {
					break
				}
			}
		}
		if !updated {
			break
		}
	}
}

// computeLeftMostCorners assigns each vertex its canonical seed corner by
// sweeping every face's corners and, for each unvisited vertex, swinging as
// far left as possible (or, failing that, sweeping right from the starting
// corner to cover an open boundary fan). A vertex visited a second time
// from an unconnected fan is split into a new synthesized vertex, matching
// draco-oxide's non-manifold vertex handling.
func (t *Table) computeLeftMostCorners() {
	t.leftMostCorners = make([]meshcore.CornerIdx, t.numVertices)
	for i := range t.leftMostCorners {
		t.leftMostCorners[i] = meshcore.NoCorner
	}
	visitedVertex := make([]bool, t.numVertices)
	visitedCorner := make([]bool, t.numCorners)

	for fi := 0; fi < t.NumFaces(); fi++ {
		for local := 0; local < 3; local++ {
			c := meshcore.CornerIdx(3*fi + local)
			if visitedCorner[c] {
				continue
			}

			v := t.VertexIdx(c)
			isSplit := false
			if visitedVertex[v] {
				t.leftMostCorners = append(t.leftMostCorners, meshcore.NoCorner)
				t.nonManifoldVertexParents = append(t.nonManifoldVertexParents, v)
				visitedVertex = append(visitedVertex, false)
				v = meshcore.VertexIdx(t.numVertices)
				t.numVertices++
				isSplit = true
			}
			visitedVertex[v] = true
			visitedCorner[c] = true
			t.leftMostCorners[v] = c
			if isSplit {
				t.cornerOverride[c] = v
			}

			actC, ok := t.SwingLeft(c)
			for ok {
				if actC == c {
					break
				}
				visitedCorner[actC] = true
				t.leftMostCorners[v] = actC
				if isSplit {
					t.cornerOverride[actC] = v
				}
				actC, ok = t.SwingLeft(actC)
			}

			if !ok {
				sweepC, sweepOK := c, true
				for sweepOK {
					visitedCorner[sweepC] = true
					if isSplit {
						t.cornerOverride[sweepC] = v
					}
					sweepC, sweepOK = t.SwingRight(sweepC)
				}
			}
		}
	}
}
