// Package cornertable builds and traverses the half-edge corner table that
// underlies both the Edgebreaker encoder and the Spirale Reversi decoder,
// per spec.md §4.D. A corner is a (face, local-vertex) pair; three corners
// per face, numbered face*3+local. The table records, for every corner, its
// opposite corner across the shared edge (if any), plus one left-most
// corner per vertex to seed traversal.
//
// Grounded on draco-oxide/src/core/corner_table/mod.rs for the exact
// construction algorithm (bucket-based opposite-pairing, non-manifold edge
// breaking, non-manifold vertex splitting) and on lvlath/dfs's walker shape
// for the swing/traverse method set.
package cornertable
