package listutil

// Reverse reverses given slice in place and returns it.
func Reverse[T any](s []T) []T {
	if len(s) < 2 {
		return s
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}
