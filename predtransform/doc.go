// Package predtransform implements the prediction-transform stage of
// spec.md §4.H: mapping an (orig, pred) pair of integer attribute vectors
// to a portable, non-negative correction vector ready for entropy coding,
// and inverting that mapping on decode.
//
// Grounded on draco-oxide's encode/attribute/prediction_transform/difference.rs
// (Difference) and draco-rs's encode/attribute/prediction_transform/wrapped_difference.rs
// (WrappedDifference); stdlib only, per go.mod's justification (no
// third-party numeric-transform library appears anywhere in the example
// pack).
//
// Errors:
//
//	ErrComponentCountMismatch - orig/pred/correction vectors disagree in length.
package predtransform
