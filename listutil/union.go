package listutil

// Union concatenates a and b into a new slice pre-sized to the combined
// length. Duplicates and order are preserved.
func Union[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
