// Package prediction implements spec.md §4.G's attribute prediction
// schemes: given the corner table, the set of attribute values already
// processed earlier in the traversal, and the corner currently being
// visited, each scheme produces an i32-vector prediction that the
// predtransform stage then turns into a small correction.
//
// Grounded on draco-rs's shared/attribute/prediction_scheme/
// mesh_parallelogram_prediction.rs and mesh_multi_parallelogram_prediction.rs
// (parallelogram family, adapted from their face-scan form to the
// already-built cornertable.Table's O(1) traversal), draco-oxide's
// shared/attribute/prediction_scheme/mesh_normal_prediction.rs (octahedral
// normal prediction) and mesh_prediction_for_texture_coordinates.rs
// (texcoord prediction), and original_source's
// shared/attribute/prediction_scheme/derivative_prediction.rs (the
// barycentric derivative variant). Metadata bitstreams (flip/orientation
// bits) reuse entropy.RabsEncoder/RabsDecoder, the same RABS coder the
// corner table's interior-flag bits use elsewhere in the pipeline.
//
// Errors:
//
//	ErrNoPosition - a scheme that needs the Position attribute was not given one.
//	ErrComponentCount - a scheme received a vector of the wrong width.
package prediction
