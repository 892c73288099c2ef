package spirale

// windingOf returns the directed traversal f actually represents: sign true
// keeps the stored (ascending) order, sign false swaps the last two
// vertices, mirroring the final flip recoverOrientation applies.
func windingOf(f [3]int, sign bool) [3]int {
	if sign {
		return f
	}
	return [3]int{f[0], f[2], f[1]}
}

// directedHas reports whether winding traverses u immediately followed by v
// somewhere in its cycle.
func directedHas(w [3]int, u, v int) bool {
	for i := 0; i < 3; i++ {
		if w[i] == u && w[(i+1)%3] == v {
			return true
		}
	}
	return false
}

func facesEdges(f [3]int) [3]edgeKey {
	return [3]edgeKey{
		mkEdgeKey(f[0], f[1]),
		mkEdgeKey(f[1], f[2]),
		mkEdgeKey(f[2], f[0]),
	}
}

// recoverOrientation generalizes cornertable.Table.CheckOrientable's BFS
// sign-propagation from a validity check to a winding assignment: every
// face here is a sorted-ascending triple with no inherent winding, so a
// manifold edge shared by two faces must be assigned opposite traversal
// directions across them, rather than merely checked for one. One BFS runs
// per connected component of the face-adjacency graph, since a decoded mesh
// may contain more than one (unlike the single BFS the grounding source's
// recover_orientation assumes suffices).
func recoverOrientation(faces [][3]int) []bool {
	byEdge := make(map[edgeKey][]int, len(faces)*3)
	for fi, f := range faces {
		for _, e := range facesEdges(f) {
			byEdge[e] = append(byEdge[e], fi)
		}
	}

	sign := make([]bool, len(faces))
	visited := make([]bool, len(faces))
	for start := range faces {
		if visited[start] {
			continue
		}
		visited[start] = true
		sign[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			for _, e := range facesEdges(faces[fi]) {
				fwd := directedHas(windingOf(faces[fi], sign[fi]), e.a, e.b)
				for _, nb := range byEdge[e] {
					if nb == fi {
						continue
					}
					nbFwdAtTrue := directedHas(windingOf(faces[nb], true), e.a, e.b)
					wantSignTrue := nbFwdAtTrue != fwd
					if visited[nb] {
						continue
					}
					sign[nb] = wantSignTrue
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return sign
}
