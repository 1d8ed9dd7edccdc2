// Package seq exposes the three container primitives (pure, map, zip) over
// plain slices and the traversal swaps between slices and the option/result
// containers.
//
// Highlights:
// - Pure/Map/Zip: the primitive contract on []T
// - SequenceOption/TraverseOption: []Option -> Option of slice (strict AND)
// - SequenceResult/TraverseResult: fail fast on the first failure
// - SequenceResultMerge: accumulate every failure via the combining capability
package seq
