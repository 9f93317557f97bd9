package listutil

import (
	"math/rand"
)

// Shuffle permutes slice in place uniformly at random using given source,
// or the process-default source when src is nil.
func Shuffle[T any](s []T, src rand.Source) []T {
	if len(s) < 2 {
		return s
	}
	swap := func(i, j int) {
		s[i], s[j] = s[j], s[i]
	}
	if src != nil {
		rand.New(src).Shuffle(len(s), swap)
	} else {
		rand.Shuffle(len(s), swap)
	}
	return s
}
