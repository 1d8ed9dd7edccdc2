package chain

import (
	"github.com/ib-77/tandem/pkg/tandem/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[E, T any] struct {
	res result.Result[E, T]
}

// Start creates a new chain from a result.Result
func Start[E, T any](res result.Result[E, T]) Chain[E, T] {
	return Chain[E, T]{res: res}
}

// FromValue creates a new chain from a successful value
func FromValue[E, T any](value T) Chain[E, T] {
	return Chain[E, T]{res: result.Success[E](value)}
}

// Result returns the underlying result.Result
func (c Chain[E, T]) Result() result.Result[E, T] {
	return c.res
}

// Then chains a function that returns result.Result[E, U]
func Then[E, T, U any](c Chain[E, T], onSuccess func(T) result.Result[E, U]) Chain[E, U] {
	return Chain[E, U]{res: result.FlatMap(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[error, T], tryOnSuccess func(T) (U, error)) Chain[error, U] {
	return Then(c, func(v T) result.Result[error, U] {
		return result.Of(tryOnSuccess(v))
	})
}

// Map chains a pure transformation function
func Map[E, T, U any](c Chain[E, T], onSuccess func(T) U) Chain[E, U] {
	return Chain[E, U]{res: result.Map(c.res, onSuccess)}
}

// Ensure performs a side effect without changing the result
func (c Chain[E, T]) Ensure(onSuccess func(T)) Chain[E, T] {
	return Chain[E, T]{res: result.Tee(c.res, onSuccess)}
}

// Finally collapses the chain into a final value using result.Fold
func Finally[E, T, U any](c Chain[E, T], onSuccess func(T) U, onFailure func(E) U) U {
	return result.Fold(c.res, onSuccess, onFailure)
}
