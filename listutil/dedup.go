package listutil

import "cmp"

// Dedup returns a sorted copy of slice with duplicate values removed.
// The original slice is left untouched.
func Dedup[T cmp.Ordered](s []T) []T {
	if len(s) < 2 {
		return Clone(s)
	}

	out := Sorted(s)
	k := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[k-1] {
			out[k] = out[i]
			k++
		}
	}
	return out[:k]
}
