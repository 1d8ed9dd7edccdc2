// Package result implements the disjoint success/failure container and the
// three-way failure type produced when two results are combined.
//
// Highlights:
// - Success/Fail/Of: construct Result[E, T]
// - Map/MapError/FlatMap/Flatten: transform either channel, chain on success
// - Fold: total elimination; MustValue/Extract: the run boundary where a
//   failure becomes a host-level signal
// - Zip: pairwise combination with three-way failure accounting (Inclusive
//   keeps left-only, right-only or both original failures)
// - ZipMerge/ApplyMerge/Lift*Merge: collapse a both-sides failure into one
//   value via the failure type's combining capability
// - Lift2/Lift3: curried lifting, collapsed to the left error type
// - Traverse/TraverseOption: swap nesting with another container
//
// The error type is reconciled only by Zip and the merge combinators;
// FlatMap statically requires the continuation to share the outer error
// type.
package result
