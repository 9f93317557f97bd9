package listutil

import "iter"

// Immutable is a read-only list. There is no way to modify it through
// the type, so misuse that would raise an unsupported-operation error in
// other collection libraries fails at compile time here.
type Immutable[T any] struct {
	s []T
}

// EmptyImmutable returns an empty read-only list. It allocates nothing.
func EmptyImmutable[T any]() Immutable[T] {
	return Immutable[T]{}
}

// Singleton returns a read-only list holding a single value.
func Singleton[T any](value T) Immutable[T] {
	return Immutable[T]{s: []T{value}}
}

// ImmutableOf returns a read-only list holding a defensive copy of
// values.
func ImmutableOf[T any](values ...T) Immutable[T] {
	return Immutable[T]{s: Clone(values)}
}

// Freeze returns a read-only view over slice without copying it. Writes
// through the original slice remain visible in the view; callers wanting
// a snapshot should use ImmutableOf instead.
func Freeze[T any](s []T) Immutable[T] {
	return Immutable[T]{s: s}
}

// Prepend returns a read-only list with first placed before rest.
func Prepend[T any](first T, rest []T) Immutable[T] {
	out := make([]T, 0, len(rest)+1)
	out = append(out, first)
	out = append(out, rest...)
	return Immutable[T]{s: out}
}

// Len returns the number of elements.
func (l Immutable[T]) Len() int {
	return len(l.s)
}

// Get returns the element at index i.
func (l Immutable[T]) Get(i int) T {
	return l.s[i]
}

// Slice copies the list out into a fresh mutable slice.
func (l Immutable[T]) Slice() []T {
	if l.s == nil {
		return []T{}
	}
	return Clone(l.s)
}

// Values iterates the list front to back.
func (l Immutable[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.s {
			if !yield(v) {
				return
			}
		}
	}
}
