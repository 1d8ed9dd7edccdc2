package option

import (
	"github.com/ib-77/tandem/pkg/tandem"
)

// Option holds either a present value or nothing. The zero value is None.
// Options are immutable; every operation returns a fresh value.
type Option[T any] struct {
	value   T
	present bool
}

var _ tandem.ValueProvider[int] = Option[int]{}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of adapts the comma-ok convention: Some(v) when ok, None otherwise.
func Of[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value if present, otherwise evaluates fallback.
// fallback is not called when the value is present.
func (o Option[T]) OrElse(fallback func() T) T {
	if o.present {
		return o.value
	}
	return fallback()
}

// Filter keeps a present value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

// ToSeq returns zero or one element.
func (o Option[T]) ToSeq() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// IfPresent runs action on the value; no action on None.
func (o Option[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

func Map[T, A any](o Option[T], transform func(T) A) Option[A] {
	if o.present {
		return Some(transform(o.value))
	}
	return None[A]()
}

// Zip pairs two options when both are present; any absence yields None.
func Zip[T, U any](left Option[T], right Option[U]) Option[tandem.Pair[T, U]] {
	if left.present && right.present {
		return Some(tandem.PairOf(left.value, right.value))
	}
	return None[tandem.Pair[T, U]]()
}

// Apply applies an optional function to an optional argument, with the same
// strict-AND rule as Zip.
func Apply[T, A any](transform Option[func(T) A], o Option[T]) Option[A] {
	return Map(Zip(transform, o), func(p tandem.Pair[func(T) A, T]) A {
		return p.First(p.Second)
	})
}

// Flatten collapses one level of nesting; absence at either level wins.
func Flatten[A any](o Option[Option[A]]) Option[A] {
	if o.present {
		return o.value
	}
	return None[A]()
}

func FlatMap[T, A any](o Option[T], transform func(T) Option[A]) Option[A] {
	return Flatten(Map(o, transform))
}

// Fold eliminates the option; exactly one branch runs.
func Fold[T, A any](o Option[T], onSome func(T) A, onNone func() A) A {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Lift2 lifts a two-argument function over options: the curried function is
// pured in and argument options applied left to right.
func Lift2[A, B, C any](f func(A, B) C) func(Option[A], Option[B]) Option[C] {
	return tandem.Lift2With(f,
		Some[func(A) func(B) C],
		Apply[A, func(B) C],
		Apply[B, C],
	)
}

// Lift3 is the three-argument form of Lift2.
func Lift3[A, B, C, D any](f func(A, B, C) D) func(Option[A], Option[B], Option[C]) Option[D] {
	return tandem.Lift3With(f,
		Some[func(A) func(B) func(C) D],
		Apply[A, func(B) func(C) D],
		Apply[B, func(C) D],
		Apply[C, D],
	)
}

// Traverse swaps nesting with an arbitrary container, given that container's
// primitives: wrapSome must be the container's map with Some baked in, and
// pureNone its pure of None. When present the transform runs and its output
// is wrapped; when absent pureNone is produced and transform never runs.
func Traverse[T, C, CR any](o Option[T], transform func(T) C,
	wrapSome func(C) CR, pureNone func() CR) CR {
	if o.present {
		return wrapSome(transform(o.value))
	}
	return pureNone()
}

// TraverseSeq is Traverse against the slice container: a present value maps
// its transform output element-wise into Some, an absent one yields the
// single-element sequence holding None.
func TraverseSeq[T, A any](o Option[T], transform func(T) []A) []Option[A] {
	return Traverse(o, transform,
		func(xs []A) []Option[A] {
			out := make([]Option[A], 0, len(xs))
			for _, x := range xs {
				out = append(out, Some(x))
			}
			return out
		},
		func() []Option[A] {
			return []Option[A]{None[A]()}
		},
	)
}
