// Package meshbuilder normalizes a caller-supplied meshcore.Mesh into the
// form the rest of the codec requires, per spec.md §4.J: attribute parent
// dependencies validated, Position sorted first, vertices deduplicated by
// Position-domain attribute bytes, degenerate faces dropped, and
// unreferenced vertices compacted out of every point-indexed attribute.
// These steps must precede both cornertable.Build (which rejects an unused
// vertex with ErrUnusedVertex) and Edgebreaker encoding.
//
// Grounded on draco-oxide/src/core/mesh/builder.rs's MeshBuilder::build
// pipeline (dependency_check, get_sorted_attributes,
// deduplicate_vertices_based_on_positions, the degenerate-face filter,
// remove_unused_vertices) for the step order and semantics, and on
// lvlath/builder's contract of a single validated entry point returning
// sentinel errors rather than panicking. Unlike the Rust original, the
// per-attribute-component-type remapping switch is unnecessary here: this
// package rebuilds each affected Attribute's ValueMap through the existing
// meshcore.Attribute.SetValueMap/CompactUnused primitives, which already
// generalize over every stored component kind.
//
// Errors:
//
//	ErrNilMesh - Build was called with a nil *meshcore.Mesh.
//	ErrMinimumDependency - an attribute's parent dependency is unsatisfied.
//	ErrPointOutOfRange - a face references a point beyond a position-domain
//	  attribute's value range.
package meshbuilder
