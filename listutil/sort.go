package listutil

import (
	"cmp"
	"slices"
)

// Sort sorts slice in place in natural ascending order.
func Sort[T cmp.Ordered](s []T) {
	slices.Sort(s)
}

// SortFunc sorts slice in place using given comparison function.
// The sort is stable: equal elements keep their original order.
func SortFunc[T any](s []T, compare func(a, b T) int) {
	slices.SortStableFunc(s, compare)
}

// SortBy sorts slice in place using given sortKey.
func SortBy[S ~[]E, E any, U cmp.Ordered](s S, sortKey func(E) U) {
	slices.SortStableFunc(s, func(a, b E) int { return cmp.Compare(sortKey(a), sortKey(b)) })
}

// SortDescBy sorts slice in place using given sortKey in descending order.
func SortDescBy[S ~[]E, E any, U cmp.Ordered](s S, sortKey func(E) U) {
	slices.SortStableFunc(s, func(a, b E) int { return cmp.Compare(sortKey(b), sortKey(a)) })
}

// Sorted returns a sorted copy of slice, leaving the original untouched.
func Sorted[T cmp.Ordered](s []T) []T {
	s2 := Clone(s)
	slices.Sort(s2)
	return s2
}
