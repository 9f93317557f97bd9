package listutil

// Distinct returns a copy of slice with duplicates removed, keeping the
// first occurrence of each value and its original position. The result
// never aliases the input.
func Distinct[T comparable](s []T) []T {
	if len(s) < 2 {
		return Clone(s)
	}

	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
