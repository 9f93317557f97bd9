package listutil

import "iter"

// Fixed is a fixed-size list view backed by the given slice. Element
// writes go through to the backing slice; the type deliberately has no
// append or remove, so structural modification is impossible.
type Fixed[T any] struct {
	s []T
}

// AsFixed wraps values into a fixed-size write-through list. When called
// with an existing slice via AsFixed(s...) the backing array is shared,
// not copied.
func AsFixed[T any](values ...T) Fixed[T] {
	return Fixed[T]{s: values}
}

// Len returns the number of elements.
func (f Fixed[T]) Len() int {
	return len(f.s)
}

// Get returns the element at index i.
func (f Fixed[T]) Get(i int) T {
	return f.s[i]
}

// Set replaces the element at index i, writing through to the backing
// slice.
func (f Fixed[T]) Set(i int, value T) {
	f.s[i] = value
}

// Slice copies the list out into a fresh slice.
func (f Fixed[T]) Slice() []T {
	return Clone(f.s)
}

// Values iterates the list front to back.
func (f Fixed[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range f.s {
			if !yield(v) {
				return
			}
		}
	}
}
