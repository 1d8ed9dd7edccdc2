// Package option implements the optional-value container: a value that is
// either present or absent, with no cause attached to absence.
//
// Highlights:
// - Some/None/Of: construct Option[T]
// - Map/FlatMap/Flatten: transform and chain present values
// - Zip/Apply: strict-AND pairwise combination (any absence wins)
// - Filter/OrElse/ToSeq/IfPresent: inspection and extraction helpers
// - Fold: total elimination into a single value
// - Lift2/Lift3: curried lifting of plain functions over options
// - Traverse/TraverseSeq: swap nesting with another container
//
// Absence short-circuits every combinator; there is no failure payload to
// report which side was absent.
package option
