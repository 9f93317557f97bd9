package listutil

// New returns an empty resizable slice.
// Exists for symmetry with the other constructors.
func New[T any]() []T {
	return make([]T, 0)
}

// Of returns a resizable slice populated with given values.
func Of[T any](values ...T) []T {
	s := make([]T, len(values))
	copy(s, values)
	return s
}

// WithCapacity returns an empty slice pre-sized to given capacity hint.
func WithCapacity[T any](n int) []T {
	return make([]T, 0, n)
}

// Clone returns a copy of slice. A nil slice yields a nil copy.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	s2 := make([]T, len(s))
	copy(s2, s)
	return s2
}

// EmptyIfNil converts a nil slice to an empty one, other slices are
// returned as is.
func EmptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
