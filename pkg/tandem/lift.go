package tandem

// Go has no higher-kinded types, so container-agnostic machinery takes the
// container's primitives (pure, apply) as function values. Each container
// package instantiates these once for its own shape.

// Curry2 turns a two-argument function into a chain of one-argument ones.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of one-argument ones.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Lift2With lifts a two-argument function over any container: curry f, pure
// the curried function into the container, then apply one argument container
// at a time, strictly left to right. CF is the container holding the curried
// function, CG the container holding its partial application, CA/CB the
// argument containers, CC the final container.
func Lift2With[A, B, C, CF, CG, CA, CB, CC any](
	f func(A, B) C,
	pure func(func(A) func(B) C) CF,
	applyFirst func(CF, CA) CG,
	applySecond func(CG, CB) CC,
) func(CA, CB) CC {
	curried := Curry2(f)
	return func(a CA, b CB) CC {
		return applySecond(applyFirst(pure(curried), a), b)
	}
}

// Lift3With extends Lift2With by one more positional argument container.
func Lift3With[A, B, C, D, CF, CG, CH, CA, CB, CC, CD any](
	f func(A, B, C) D,
	pure func(func(A) func(B) func(C) D) CF,
	applyFirst func(CF, CA) CG,
	applySecond func(CG, CB) CH,
	applyThird func(CH, CC) CD,
) func(CA, CB, CC) CD {
	curried := Curry3(f)
	return func(a CA, b CB, c CC) CD {
		return applyThird(applySecond(applyFirst(pure(curried), a), b), c)
	}
}
