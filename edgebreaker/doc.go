// Package edgebreaker implements the Edgebreaker connectivity encoder of
// spec.md §4.E: a single pass over a cornertable.Table's corners that emits
// the CLERS symbol stream {C,L,R,S,E}, one interior/boundary bit per
// connected component, the TopologySplit records needed to reattach split
// branches during decoding, and the vertex traversal order every
// prediction scheme consumes.
//
// Unlike the reference pack's edgebreaker.rs, which rebuilds its own
// edge/coboundary map before walking it, this package is authored directly
// against spec.md §4.E's corner-table/active-corner-stack description and
// drives the walk through cornertable.Table's existing Opposite/Next/
// Previous/SwingLeft/SwingRight primitives — the corner table already
// carries everything the original's edge map recomputes.
//
// Errors:
//
//	ErrEmptyTable - Encode was called on a corner table with no faces.
package edgebreaker
