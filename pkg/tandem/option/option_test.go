package option

import (
	"testing"
)

func isEven(n int) bool { return n%2 == 0 }

func TestZip_BothPresent(t *testing.T) {
	t.Parallel()

	res := Zip(Some(1), Some("x"))

	p, ok := res.Get()
	if !ok {
		t.Fatal("expected present pair")
	}
	if p.First != 1 || p.Second != "x" {
		t.Fatalf("expected (1, x), got (%v, %v)", p.First, p.Second)
	}
}

func TestZip_AnyAbsence(t *testing.T) {
	t.Parallel()

	if res := Zip(None[int](), Some("x")); res.IsSome() {
		t.Fatal("expected absence when left is absent")
	}
	if res := Zip(Some(1), None[string]()); res.IsSome() {
		t.Fatal("expected absence when right is absent")
	}
	if res := Zip(None[int](), None[string]()); res.IsSome() {
		t.Fatal("expected absence when both are absent")
	}
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()

	identity := func(n int) int { return n }
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 2 }

	if Map(Some(7), identity) != Some(7) {
		t.Fatal("map(identity) must preserve the value")
	}
	if Map(None[int](), identity) != None[int]() {
		t.Fatal("map(identity) must preserve absence")
	}

	composed := Map(Some(3), func(n int) int { return g(f(n)) })
	chained := Map(Map(Some(3), f), g)
	if composed != chained {
		t.Fatalf("composition law broken: %v vs %v", composed, chained)
	}
}

func TestFlatMap_LeftIdentity(t *testing.T) {
	t.Parallel()

	f := func(n int) Option[int] {
		if n > 0 {
			return Some(n * 10)
		}
		return None[int]()
	}

	if FlatMap(Some(4), f) != f(4) {
		t.Fatal("pure(x).flatMap(f) must equal f(x)")
	}
	if FlatMap(Some(-1), f) != f(-1) {
		t.Fatal("pure(x).flatMap(f) must equal f(x) for the absent branch")
	}
	if FlatMap(None[int](), f) != None[int]() {
		t.Fatal("flatMap on absence must stay absent")
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	if Flatten(Some(Some(5))) != Some(5) {
		t.Fatal("present(present(v)) must flatten to present(v)")
	}
	if Flatten(Some(None[int]())) != None[int]() {
		t.Fatal("present(absent) must flatten to absent")
	}
	if Flatten(None[Option[int]]()) != None[int]() {
		t.Fatal("absent must flatten to absent")
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }

	if res := Apply(Some(double), Some(6)); res != Some(12) {
		t.Fatalf("expected Some(12), got %v", res)
	}
	if res := Apply(None[func(int) int](), Some(6)); res.IsSome() {
		t.Fatal("absent function must short-circuit")
	}
	if res := Apply(Some(double), None[int]()); res.IsSome() {
		t.Fatal("absent argument must short-circuit")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	if Some(4).Filter(isEven) != Some(4) {
		t.Fatal("satisfying value must survive")
	}
	if Some(3).Filter(isEven) != None[int]() {
		t.Fatal("non-satisfying value must collapse to absence")
	}
	if None[int]().Filter(isEven) != None[int]() {
		t.Fatal("absence must stay absent")
	}
}

func TestOrElse_LazyDefault(t *testing.T) {
	t.Parallel()

	evaluated := false
	fallback := func() int {
		evaluated = true
		return 99
	}

	if got := Some(1).OrElse(fallback); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if evaluated {
		t.Fatal("default must not be evaluated when a value is present")
	}

	if got := None[int]().OrElse(fallback); got != 99 {
		t.Fatalf("expected default 99, got %d", got)
	}
	if !evaluated {
		t.Fatal("default must be evaluated on absence")
	}
}

func TestToSeq(t *testing.T) {
	t.Parallel()

	if got := Some("a").ToSeq(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := None[string]().ToSeq(); len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
}

func TestIfPresent(t *testing.T) {
	t.Parallel()

	seen := 0
	Some(5).IfPresent(func(n int) { seen = n })
	if seen != 5 {
		t.Fatalf("expected action on present value, seen=%d", seen)
	}

	None[int]().IfPresent(func(n int) { seen = -1 })
	if seen == -1 {
		t.Fatal("no action expected on absence")
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	onSome := func(n int) string { return "some" }
	onNone := func() string { return "none" }

	if Fold(Some(1), onSome, onNone) != "some" {
		t.Fatal("expected the present branch")
	}
	if Fold(None[int](), onSome, onNone) != "none" {
		t.Fatal("expected the absent branch")
	}
}

func TestLift2(t *testing.T) {
	t.Parallel()

	add := Lift2(func(a, b int) int { return a + b })

	if res := add(Some(2), Some(3)); res != Some(5) {
		t.Fatalf("expected Some(5), got %v", res)
	}
	if res := add(None[int](), Some(3)); res.IsSome() {
		t.Fatal("expected absence from the left argument")
	}
	if res := add(Some(2), None[int]()); res.IsSome() {
		t.Fatal("expected absence from the right argument")
	}
}

func TestLift3(t *testing.T) {
	t.Parallel()

	join := Lift3(func(a, b, c string) string { return a + b + c })

	if res := join(Some("a"), Some("b"), Some("c")); res != Some("abc") {
		t.Fatalf("expected Some(abc), got %v", res)
	}
	if res := join(Some("a"), None[string](), Some("c")); res.IsSome() {
		t.Fatal("expected absence from the middle argument")
	}
}

func TestTraverseSeq_Present(t *testing.T) {
	t.Parallel()

	res := TraverseSeq(Some([]int{1, 2, 3}), func(xs []int) []int { return xs })

	if len(res) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(res))
	}
	for i, want := range []int{1, 2, 3} {
		v, ok := res[i].Get()
		if !ok || v != want {
			t.Fatalf("element %d: expected Some(%d), got %v", i, want, res[i])
		}
	}
}

func TestTraverseSeq_Absent(t *testing.T) {
	t.Parallel()

	invoked := false
	res := TraverseSeq(None[int](), func(n int) []string {
		invoked = true
		return []string{"x"}
	})

	if invoked {
		t.Fatal("transform must not run on absence")
	}
	if len(res) != 1 || res[0].IsSome() {
		t.Fatalf("expected a single absent element, got %v", res)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	if Of(3, true) != Some(3) {
		t.Fatal("expected Some from comma-ok true")
	}
	if Of(3, false) != None[int]() {
		t.Fatal("expected None from comma-ok false")
	}
}
