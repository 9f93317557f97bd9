package listutil

import "iter"

// View is a live window over a slice. It holds the slice header itself,
// not a copy, so element writes through either the view or the backing
// slice are visible to the other. The view is fixed-size: it has no
// structural operations, and growing the backing slice after the view is
// taken is not reflected.
type View[T any] struct {
	s        []T
	reversed bool
}

// Reversed returns a live view iterating slice back to front.
func Reversed[T any](s []T) *View[T] {
	return &View[T]{s: s, reversed: true}
}

func (v *View[T]) index(i int) int {
	if v.reversed {
		return len(v.s) - 1 - i
	}
	return i
}

// Len returns the number of elements in the view.
func (v *View[T]) Len() int {
	return len(v.s)
}

// Get returns the element at position i in view order.
func (v *View[T]) Get(i int) T {
	return v.s[v.index(i)]
}

// Set writes the element at position i in view order through to the
// backing slice.
func (v *View[T]) Set(i int, value T) {
	v.s[v.index(i)] = value
}

// Reversed returns a view over the same backing slice with the opposite
// iteration order. Reversing a view twice restores the original order.
func (v *View[T]) Reversed() *View[T] {
	return &View[T]{s: v.s, reversed: !v.reversed}
}

// Backing returns the backing slice as is.
func (v *View[T]) Backing() []T {
	return v.s
}

// Slice copies the view out into a fresh slice in view order.
func (v *View[T]) Slice() []T {
	out := make([]T, len(v.s))
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}

// Values iterates the view in view order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(v.s); i++ {
			if !yield(v.Get(i)) {
				return
			}
		}
	}
}
