package tandem

// Combiner is the combining capability for failure values: merging two
// failures of the same type into one. Types opt in by implementing it;
// merge-flavored combinators (ZipMerge, ApplyMerge, Lift*Merge) demand it,
// everything else leaves the failure type unconstrained.
type Combiner[E any] interface {
	// Combine merges the receiver with other, receiver first.
	Combine(other E) E
}

// ValueProvider is the inspection contract for containers that may hold a
// payload. The boolean reports whether the payload is actually there.
type ValueProvider[T any] interface {
	Get() (T, bool)
}

// FailureProvider extends inspection to containers with a failure channel.
type FailureProvider[E, T any] interface {
	ValueProvider[T]
	// Err returns the held failure value; meaningful only when IsFailure.
	Err() E
	// IsFailure reports whether the container holds a failure.
	IsFailure() bool
}
