// Package draco is the top-level entry point of the codec: Encode takes a
// caller-built meshcore.Mesh through normalization, connectivity encoding,
// and attribute coding, producing the wireformat byte stream of spec.md
// §6; Decode inverts it. Both are single validated entry points that wrap
// every stage error at the package boundary rather than letting a lower
// package's sentinel leak through unwrapped — the same "one orchestrator,
// sequential stages, wrap once" contract as lvlath/builder.BuildGraph.
//
// Encode prefers the compressed Edgebreaker/Spirale Reversi connectivity
// path (spec.md §4.D-F); if the normalized mesh is not a single
// corner-table-representable orientable manifold (cornertable.Build or
// edgebreaker.Encode refuses it), Encode falls back to
// SPEC_FULL.md's supplemented Sequential connectivity method — a plain
// triangle list with no connectivity compression — rather than failing the
// whole encode.
//
// Attribute values are coded through quantize, prediction, predtransform
// and entropy (attributes.go). Position-domain attributes use
// MeshParallelogramPrediction when the Edgebreaker connectivity path ran
// (driven over a real corner table at encode time and a connectivity-only
// table rebuilt from decoded faces at decode time, in both cases walked in
// the attribute transmission order), falling back to DeltaPrediction on
// the Sequential connectivity path, which has no corner-table adjacency to
// offer the scheme. Corner-domain attributes are value-coded with
// DeltaPrediction over per-corner transmission order on the Sequential
// path only; see ErrCornerDomainUnsupportedWithEdgebreaker and DESIGN.md
// for why the Edgebreaker path cannot support them yet.
//
// Errors:
//
//	every sentinel from meshbuilder, cornertable, edgebreaker, spirale, and
//	wireformat, wrapped as "draco.Encode: ..." / "draco.Decode: ...", plus
//	ErrCornerDomainUnsupportedWithEdgebreaker and
//	ErrPredictionSchemeMismatch (see errors.go).
package draco
