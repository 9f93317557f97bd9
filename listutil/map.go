package listutil

// Map returns a new slice with fn applied to every value of s. A nil
// input yields a nil result, an empty one an empty result.
func Map[S ~[]T, T, M any](s S, fn func(T) M) []M {
	if s == nil {
		return nil
	}

	out := make([]M, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// MapE is like Map for transforms that can fail; the first error stops
// the mapping and is returned.
func MapE[S ~[]T, T, M any](s S, fn func(T) (M, error)) ([]M, error) {
	if s == nil {
		return nil, nil
	}

	out := make([]M, len(s))
	for i, v := range s {
		m, err := fn(v)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}
