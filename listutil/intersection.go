package listutil

// Intersection returns the multiset intersection of a and b. The lookup
// is built from the smaller slice, result order follows the larger
// slice's iteration order, and every match consumes one occurrence from
// the lookup, so a value repeats at most as many times as the smaller
// slice holds it.
func Intersection[T comparable](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	larger, smaller := a, b
	if len(b) > len(a) {
		larger, smaller = b, a
	}

	counts := make(map[T]int, len(smaller))
	for _, v := range smaller {
		counts[v]++
	}

	var out []T
	for _, v := range larger {
		if counts[v] > 0 {
			out = append(out, v)
			counts[v]--
		}
	}
	return out
}
