// Package tandem contains the shared core of the library: the Pair value
// type, the capability interfaces satisfied by the concrete containers,
// an error-list failure type with a combining capability, and the generic
// curry/lift machinery used by the container packages.
//
// Highlights:
// - Pair/PairOf: the product type produced by pairwise combination
// - Combiner: merge two failure values of the same type into one
// - ErrList/Errs: []error-backed Combiner usable as a plain error
// - Curry2/Curry3: explicit currying for multi-argument lifting
// - Lift2With/Lift3With: container-agnostic lift over pure/apply primitives
package tandem
