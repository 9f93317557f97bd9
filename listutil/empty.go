package listutil

// IsEmpty reports whether slice is nil or has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether slice has at least one element.
func IsNotEmpty[T any](s []T) bool {
	return len(s) > 0
}

// First returns the first element of slice.
// The second return value is false for a nil or empty slice.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Last returns the last element of slice.
// The second return value is false for a nil or empty slice.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}
