package listutil

import "slices"

// Equal reports whether two slices have the same length and equal
// elements in the same order. Two nil (or empty) slices are equal.
func Equal[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// EqualFunc is like Equal using given equality function on each pair of
// elements.
func EqualFunc[T any](a, b []T, eq func(a, b T) bool) bool {
	return slices.EqualFunc(a, b, eq)
}
