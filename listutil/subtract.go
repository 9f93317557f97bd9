package listutil

// Subtract returns a copy of a without any element present in b. The
// result never aliases a, so mutating it leaves a untouched.
func Subtract[T comparable](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return Clone(a)
	}

	set := make(map[T]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}

	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := set[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
