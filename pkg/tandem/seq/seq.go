package seq

import (
	"github.com/ib-77/tandem/pkg/tandem"
	"github.com/ib-77/tandem/pkg/tandem/option"
	"github.com/ib-77/tandem/pkg/tandem/result"
)

// Pure wraps a single value into a one-element sequence.
func Pure[T any](v T) []T {
	return []T{v}
}

func Map[A, B any](xs []A, transform func(A) B) []B {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		out = append(out, transform(x))
	}
	return out
}

// Zip pairs elements positionally, truncating to the shorter side.
func Zip[A, B any](as []A, bs []B) []tandem.Pair[A, B] {
	n := min(len(as), len(bs))
	out := make([]tandem.Pair[A, B], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, tandem.PairOf(as[i], bs[i]))
	}
	return out
}

// SequenceOption swaps nesting: all elements present yields a present slice
// in original order, any absence collapses the whole to None.
func SequenceOption[T any](xs []option.Option[T]) option.Option[[]T] {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		v, ok := x.Get()
		if !ok {
			return option.None[[]T]()
		}
		out = append(out, v)
	}
	return option.Some(out)
}

// TraverseOption maps each element to an option and sequences the outputs.
func TraverseOption[A, B any](xs []A, transform func(A) option.Option[B]) option.Option[[]B] {
	return SequenceOption(Map(xs, transform))
}

// SequenceResult swaps nesting, failing fast: the first failure becomes the
// failure of the whole and later elements are not inspected.
func SequenceResult[E, T any](xs []result.Result[E, T]) result.Result[E, []T] {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if x.IsFailure() {
			return result.Fail[E, []T](x.Err())
		}
		out = append(out, x.Value())
	}
	return result.Success[E](out)
}

// TraverseResult maps each element to a result and sequences the outputs,
// failing fast; the transform is not invoked past the first failure.
func TraverseResult[E, A, B any](xs []A, transform func(A) result.Result[E, B]) result.Result[E, []B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		r := transform(x)
		if r.IsFailure() {
			return result.Fail[E, []B](r.Err())
		}
		out = append(out, r.Value())
	}
	return result.Success[E](out)
}

// SequenceResultMerge accumulates every failure via the combining
// capability, in element order; successes survive only if no element failed.
func SequenceResultMerge[E tandem.Combiner[E], T any](xs []result.Result[E, T]) result.Result[E, []T] {
	out := make([]T, 0, len(xs))
	var merged E
	failed := false
	for _, x := range xs {
		if x.IsFailure() {
			if failed {
				merged = merged.Combine(x.Err())
			} else {
				merged = x.Err()
				failed = true
			}
			continue
		}
		out = append(out, x.Value())
	}
	if failed {
		return result.Fail[E, []T](merged)
	}
	return result.Success[E](out)
}
