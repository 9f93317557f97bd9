package listutil

// Filter returns a new slice holding only the values keep accepts, in
// their original order. The input slice is not modified.
func Filter[S ~[]T, T any](s S, keep func(T) bool) S {
	if len(s) == 0 {
		return s
	}

	out := make(S, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
