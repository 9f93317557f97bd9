package listutil

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BinarySearch looks up key in a slice sorted in ascending order and
// returns its index. When key is absent it returns -(insertionPoint)-1,
// where insertionPoint is the index key would be inserted at to keep the
// slice sorted. Sortedness is the caller's responsibility and is not
// checked.
func BinarySearch[T constraints.Ordered](s []T, key T) int {
	pos, found := slices.BinarySearch(s, key)
	if found {
		return pos
	}
	return -(pos + 1)
}

// BinarySearchFunc is like BinarySearch for a slice sorted by given
// comparison function.
func BinarySearchFunc[T any](s []T, key T, compare func(a, b T) int) int {
	pos, found := slices.BinarySearchFunc(s, key, compare)
	if found {
		return pos
	}
	return -(pos + 1)
}

// InsertionPoint decodes the negative value returned by BinarySearch for
// an absent key back into the index the key would be inserted at.
func InsertionPoint(searchResult int) int {
	if searchResult >= 0 {
		return searchResult
	}
	return -(searchResult + 1)
}
