package result

import (
	"fmt"

	"github.com/ib-77/tandem/pkg/tandem"
)

type side uint8

const (
	leftOnly side = iota + 1
	rightOnly
	bothSides
)

// Inclusive is the failure of a combined pair of results: the left operand
// failed, the right one did, or both did with both failures retained. A
// both-sides value is produced only by Zip/Apply; it is never an initial
// failure.
type Inclusive[L, R any] struct {
	left  L
	right R
	side  side
}

func LeftOf[L, R any](left L) Inclusive[L, R] {
	return Inclusive[L, R]{
		left: left,
		side: leftOnly,
	}
}

func RightOf[L, R any](right R) Inclusive[L, R] {
	return Inclusive[L, R]{
		right: right,
		side:  rightOnly,
	}
}

func BothOf[L, R any](left L, right R) Inclusive[L, R] {
	return Inclusive[L, R]{
		left:  left,
		right: right,
		side:  bothSides,
	}
}

func (in Inclusive[L, R]) IsLeft() bool {
	return in.side == leftOnly
}

func (in Inclusive[L, R]) IsRight() bool {
	return in.side == rightOnly
}

func (in Inclusive[L, R]) IsBoth() bool {
	return in.side == bothSides
}

// Left projects down to the left failure, discarding any right component.
// Meaningful for left-only and both-sides values; zero otherwise.
func (in Inclusive[L, R]) Left() L {
	return in.left
}

// Right projects down to the right failure, discarding any left component.
// Meaningful for right-only and both-sides values; zero otherwise.
func (in Inclusive[L, R]) Right() R {
	return in.right
}

// Error renders the failure(s), making Inclusive usable as a plain error.
func (in Inclusive[L, R]) Error() string {
	switch in.side {
	case leftOnly:
		return fmt.Sprintf("left: %v", in.left)
	case rightOnly:
		return fmt.Sprintf("right: %v", in.right)
	case bothSides:
		return fmt.Sprintf("left: %v; right: %v", in.left, in.right)
	}
	return "no failure"
}

// FoldInclusive eliminates the three variants; exactly one branch runs.
func FoldInclusive[L, R, A any](in Inclusive[L, R],
	onLeft func(L) A, onRight func(R) A, onBoth func(L, R) A) A {

	switch in.side {
	case rightOnly:
		return onRight(in.right)
	case bothSides:
		return onBoth(in.left, in.right)
	default:
		return onLeft(in.left)
	}
}

// Merge collapses a same-typed Inclusive to one failure via the combining
// capability: a both-sides value combines left with right, left first.
func Merge[E tandem.Combiner[E]](in Inclusive[E, E]) E {
	return FoldInclusive(in,
		func(l E) E { return l },
		func(r E) E { return r },
		func(l, r E) E { return l.Combine(r) },
	)
}

// First projects a same-typed Inclusive to its leftmost failure: the left
// one when present, the right one only when the left side did not fail.
// This deliberately discards the right failure of a both-sides value.
func First[E any](in Inclusive[E, E]) E {
	if in.side == rightOnly {
		return in.right
	}
	return in.left
}
