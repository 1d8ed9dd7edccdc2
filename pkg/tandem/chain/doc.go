// Package chain provides a fluent wrapper around result.Result[E, T]
// for building synchronous success/failure pipelines.
//
// It composes Map, FlatMap, Tee and Fold behind a convenient Chain[E, T]
// type. This enables ergonomic pipelines without dealing directly with
// branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[E, T] or value
// - Then: switch to a new Result[E, U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// The error type is fixed along a chain; reconciling differing error types
// is the job of result.Zip and the merge combinators.
package chain
