package tandem

import (
	"testing"
)

// box is a minimal container used to exercise the generic lift machinery:
// it always holds exactly one value, so pure/apply are total.
type box[T any] struct {
	v T
}

func boxOf[T any](v T) box[T] {
	return box[T]{v: v}
}

func applyBox[A, B any](f box[func(A) B], a box[A]) box[B] {
	return boxOf(f.v(a.v))
}

func TestCurry2(t *testing.T) {
	t.Parallel()

	add := Curry2(func(a, b int) int { return a + b })
	if got := add(2)(3); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestCurry3(t *testing.T) {
	t.Parallel()

	join := Curry3(func(a, b, c string) string { return a + b + c })
	if got := join("a")("b")("c"); got != "abc" {
		t.Fatalf("expected abc, got %s", got)
	}
}

func TestLift2With(t *testing.T) {
	t.Parallel()

	add := Lift2With(func(a, b int) int { return a + b },
		boxOf[func(int) func(int) int],
		applyBox[int, func(int) int],
		applyBox[int, int],
	)

	if got := add(boxOf(2), boxOf(3)); got.v != 5 {
		t.Fatalf("expected boxed 5, got %v", got.v)
	}
}

func TestLift3With_PositionalOrder(t *testing.T) {
	t.Parallel()

	var order []string
	observe := func(tag string) box[string] {
		order = append(order, tag)
		return boxOf(tag)
	}

	concat := Lift3With(func(a, b, c string) string { return a + b + c },
		boxOf[func(string) func(string) func(string) string],
		applyBox[string, func(string) func(string) string],
		applyBox[string, func(string) string],
		applyBox[string, string],
	)

	got := concat(observe("a"), observe("b"), observe("c"))
	if got.v != "abc" {
		t.Fatalf("expected abc, got %s", got.v)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("arguments must evaluate left to right, got %v", order)
	}
}

func TestPairOf(t *testing.T) {
	t.Parallel()

	p := PairOf(1, "x")
	if p.First != 1 || p.Second != "x" {
		t.Fatalf("unexpected pair %+v", p)
	}
}
