package listutil

import (
	"cmp"
	"iter"
	"slices"
)

// SortedList keeps its elements sorted on every insert. It deliberately
// exposes only the operations an order-maintaining container can support
// correctly: there is no positional insert and no Set.
type SortedList[T any] struct {
	compare func(a, b T) int
	items   []T
}

// NewSortedList returns a SortedList ordered by the natural ascending
// order of T.
func NewSortedList[T cmp.Ordered]() *SortedList[T] {
	return NewSortedListFunc[T](cmp.Compare[T])
}

// NewSortedListFunc returns a SortedList ordered by given comparison
// function.
func NewSortedListFunc[T any](compare func(a, b T) int) *SortedList[T] {
	return &SortedList[T]{compare: compare}
}

// Add inserts value at its sort position. Among equal elements the new
// value goes last, keeping insertion order stable.
func (l *SortedList[T]) Add(value T) {
	pos, _ := slices.BinarySearchFunc(l.items, value, l.compare)
	for pos < len(l.items) && l.compare(l.items[pos], value) == 0 {
		pos++
	}
	l.items = slices.Insert(l.items, pos, value)
}

// Len returns the number of elements.
func (l *SortedList[T]) Len() int {
	return len(l.items)
}

// Get returns the element at index i in sort order.
func (l *SortedList[T]) Get(i int) T {
	return l.items[i]
}

// IndexOf returns the index of the first element comparing equal to
// value, or -1 when absent.
func (l *SortedList[T]) IndexOf(value T) int {
	pos, found := slices.BinarySearchFunc(l.items, value, l.compare)
	if !found {
		return -1
	}
	return pos
}

// Remove removes the first element comparing equal to value and reports
// whether anything was removed.
func (l *SortedList[T]) Remove(value T) bool {
	pos := l.IndexOf(value)
	if pos < 0 {
		return false
	}
	l.RemoveAt(pos)
	return true
}

// RemoveAt removes and returns the element at index i.
func (l *SortedList[T]) RemoveAt(i int) T {
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return v
}

// Slice copies the list out into a fresh slice in sort order.
func (l *SortedList[T]) Slice() []T {
	return Clone(l.items)
}

// Values iterates the list in sort order.
func (l *SortedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}
