package tandem

// Pair holds the two values produced by a successful pairwise combination.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
