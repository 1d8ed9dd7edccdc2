package result

import (
	"github.com/ib-77/tandem/pkg/tandem"
	"github.com/ib-77/tandem/pkg/tandem/option"
)

// Result holds either a success payload or a failure value. The failure
// type is unconstrained; merge-flavored combinators demand the combining
// capability where they need it. Results are immutable; every operation
// returns a fresh value.
type Result[E, T any] struct {
	value  T
	err    E
	failed bool
}

var _ tandem.FailureProvider[error, int] = Result[error, int]{}

func Success[E, T any](v T) Result[E, T] {
	return Result[E, T]{
		value: v,
	}
}

func Fail[E, T any](err E) Result[E, T] {
	return Result[E, T]{
		err:    err,
		failed: true,
	}
}

// Of adapts the (value, error) convention to a Result over plain errors.
func Of[T any](v T, err error) Result[error, T] {
	if err != nil {
		return Fail[error, T](err)
	}
	return Success[error](v)
}

// FromOption converts absence into a failure with a caller-supplied value.
// Non-core convenience; a present value becomes a success unchanged.
func FromOption[E, T any](o option.Option[T], err E) Result[E, T] {
	if v, ok := o.Get(); ok {
		return Success[E](v)
	}
	return Fail[E, T](err)
}

func (r Result[E, T]) IsSuccess() bool {
	return !r.failed
}

func (r Result[E, T]) IsFailure() bool {
	return r.failed
}

// Value returns the payload; meaningful only on success.
func (r Result[E, T]) Value() T {
	return r.value
}

// Err returns the failure value; meaningful only on failure.
func (r Result[E, T]) Err() E {
	return r.err
}

func (r Result[E, T]) Get() (T, bool) {
	return r.value, !r.failed
}

// MustValue is the extraction boundary: the payload on success, a panic
// carrying the failure value otherwise. Everywhere else a failure is data.
func (r Result[E, T]) MustValue() T {
	if r.failed {
		panic(r.err)
	}
	return r.value
}

// OrElse returns the payload if present, otherwise evaluates fallback on
// the failure. fallback is not called on success.
func (r Result[E, T]) OrElse(fallback func(E) T) T {
	if r.failed {
		return fallback(r.err)
	}
	return r.value
}

// Extract converts a Result over a real error type to the (value, error)
// convention at the call boundary.
func Extract[E error, T any](r Result[E, T]) (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Map transforms the payload on success; a failure passes through with its
// value untouched.
func Map[E, T, A any](r Result[E, T], transform func(T) A) Result[E, A] {
	if r.failed {
		return Fail[E, A](r.err)
	}
	return Success[E](transform(r.value))
}

// MapError transforms the failure value; a success passes through untouched.
func MapError[E, F, T any](r Result[E, T], transform func(E) F) Result[F, T] {
	if r.failed {
		return Fail[F, T](transform(r.err))
	}
	return Success[F](r.value)
}

// Fold eliminates the result; exactly one branch runs.
func Fold[E, T, A any](r Result[E, T], onSuccess func(T) A, onFailure func(E) A) A {
	if r.failed {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}

// Tee runs a side effect on the payload without changing the result.
func Tee[E, T any](r Result[E, T], onSuccess func(T)) Result[E, T] {
	if !r.failed {
		onSuccess(r.value)
	}
	return r
}

// Flatten collapses one level of nesting; a failure at either level
// surfaces as the failure of the unwrapped result.
func Flatten[E, A any](r Result[E, Result[E, A]]) Result[E, A] {
	if r.failed {
		return Fail[E, A](r.err)
	}
	return r.value
}

// FlatMap chains a success into a continuation sharing the outer error
// type; the match is a static constraint, no error reconciliation happens.
func FlatMap[E, T, A any](r Result[E, T], transform func(T) Result[E, A]) Result[E, A] {
	return Flatten(Map(r, transform))
}

// Zip combines two independently produced results, keeping track of which
// side(s) failed:
//
//	Success(a) + Success(b) -> Success(Pair(a, b))
//	Success(a) + Fail(f)    -> Fail(RightOf(f))
//	Fail(e)    + Success(b) -> Fail(LeftOf(e))
//	Fail(e)    + Fail(f)    -> Fail(BothOf(e, f))
//
// The left operand is inspected first; failure identity follows operand
// position, never evaluation reordering.
func Zip[LE, A, RE, B any](left Result[LE, A], right Result[RE, B]) Result[Inclusive[LE, RE], tandem.Pair[A, B]] {
	if left.failed {
		if right.failed {
			return Fail[Inclusive[LE, RE], tandem.Pair[A, B]](BothOf[LE, RE](left.err, right.err))
		}
		return Fail[Inclusive[LE, RE], tandem.Pair[A, B]](LeftOf[LE, RE](left.err))
	}
	if right.failed {
		return Fail[Inclusive[LE, RE], tandem.Pair[A, B]](RightOf[LE, RE](right.err))
	}
	return Success[Inclusive[LE, RE]](tandem.PairOf(left.value, right.value))
}

// ZipMerge combines like Zip but collapses a both-sides failure into one
// value via the combining capability, left failure first. Use it to
// accumulate every failure across independent validations.
func ZipMerge[E tandem.Combiner[E], A, B any](left Result[E, A], right Result[E, B]) Result[E, tandem.Pair[A, B]] {
	return MapError(Zip(left, right), Merge[E])
}

// Apply applies a fallible function to a fallible argument, preserving the
// full three-way failure accounting.
func Apply[E, T, A any](transform Result[E, func(T) A], r Result[E, T]) Result[Inclusive[E, E], A] {
	return Map(Zip(transform, r), func(p tandem.Pair[func(T) A, T]) A {
		return p.First(p.Second)
	})
}

// ApplyL is Apply collapsed to the left error type via the leftmost
// projection; the right failure of a both-sides outcome is discarded.
func ApplyL[E, T, A any](transform Result[E, func(T) A], r Result[E, T]) Result[E, A] {
	return MapError(Apply(transform, r), First[E])
}

// ApplyMerge is Apply with both-sides failures collapsed through the
// combining capability instead of being discarded.
func ApplyMerge[E tandem.Combiner[E], T, A any](transform Result[E, func(T) A], r Result[E, T]) Result[E, A] {
	return MapError(Apply(transform, r), Merge[E])
}

// Lift2 lifts a two-argument function over results: the curried function is
// pured in and argument results applied left to right. Failures collapse to
// the leftmost one; use Lift2Merge to keep them all.
func Lift2[E, A, B, C any](f func(A, B) C) func(Result[E, A], Result[E, B]) Result[E, C] {
	return tandem.Lift2With(f,
		Success[E, func(A) func(B) C],
		ApplyL[E, A, func(B) C],
		ApplyL[E, B, C],
	)
}

// Lift2Full is Lift2 without the collapse: the failure keeps the full
// three-way accounting of the two argument results.
func Lift2Full[E, A, B, C any](f func(A, B) C) func(Result[E, A], Result[E, B]) Result[Inclusive[E, E], C] {
	return func(a Result[E, A], b Result[E, B]) Result[Inclusive[E, E], C] {
		return Map(Zip(a, b), func(p tandem.Pair[A, B]) C {
			return f(p.First, p.Second)
		})
	}
}

// Lift3 is the three-argument form of Lift2.
func Lift3[E, A, B, C, D any](f func(A, B, C) D) func(Result[E, A], Result[E, B], Result[E, C]) Result[E, D] {
	return tandem.Lift3With(f,
		Success[E, func(A) func(B) func(C) D],
		ApplyL[E, A, func(B) func(C) D],
		ApplyL[E, B, func(C) D],
		ApplyL[E, C, D],
	)
}

// Lift2Merge accumulates the failures of both arguments via the combining
// capability, in argument order.
func Lift2Merge[E tandem.Combiner[E], A, B, C any](f func(A, B) C) func(Result[E, A], Result[E, B]) Result[E, C] {
	return tandem.Lift2With(f,
		Success[E, func(A) func(B) C],
		ApplyMerge[E, A, func(B) C],
		ApplyMerge[E, B, C],
	)
}

// Lift3Merge is the three-argument form of Lift2Merge.
func Lift3Merge[E tandem.Combiner[E], A, B, C, D any](f func(A, B, C) D) func(Result[E, A], Result[E, B], Result[E, C]) Result[E, D] {
	return tandem.Lift3With(f,
		Success[E, func(A) func(B) func(C) D],
		ApplyMerge[E, A, func(B) func(C) D],
		ApplyMerge[E, B, func(C) D],
		ApplyMerge[E, C, D],
	)
}

// Traverse swaps nesting with an arbitrary container, given that
// container's primitives: wrapSuccess must be the container's map with
// Success baked in, and pureFail its pure of Fail. On success the transform
// runs and its output is wrapped; on failure pureFail is produced and the
// transform never runs.
func Traverse[E, T, C, CR any](r Result[E, T], transform func(T) C,
	wrapSuccess func(C) CR, pureFail func(E) CR) CR {
	if r.failed {
		return pureFail(r.err)
	}
	return wrapSuccess(transform(r.value))
}

// TraverseOption is Traverse against the optional container: a success
// lifts its transform output through Success, a failure short-circuits to
// a present Fail.
func TraverseOption[E, T, A any](r Result[E, T], transform func(T) option.Option[A]) option.Option[Result[E, A]] {
	return Traverse(r, transform,
		func(o option.Option[A]) option.Option[Result[E, A]] {
			return option.Map(o, Success[E, A])
		},
		func(err E) option.Option[Result[E, A]] {
			return option.Some(Fail[E, A](err))
		},
	)
}
