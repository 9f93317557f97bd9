package listutil

import "iter"

// LinkedList is a doubly-linked list. It exists for workloads dominated
// by pushes and pops at both ends, where a slice would keep shifting
// elements; container/list offers the same but is not generic.
type LinkedList[T any] struct {
	head, tail *linkedNode[T]
	size       int
}

type linkedNode[T any] struct {
	prev, next *linkedNode[T]
	value      T
}

// NewLinked returns an empty doubly-linked list.
func NewLinked[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// PushFront inserts value at the front.
func (l *LinkedList[T]) PushFront(value T) {
	n := &linkedNode[T]{next: l.head, value: value}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack inserts value at the back.
func (l *LinkedList[T]) PushBack(value T) {
	n := &linkedNode[T]{prev: l.tail, value: value}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// Front returns the first element; ok is false for an empty list.
func (l *LinkedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element; ok is false for an empty list.
func (l *LinkedList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// PopFront removes and returns the first element; ok is false for an
// empty list.
func (l *LinkedList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--
	return n.value, true
}

// PopBack removes and returns the last element; ok is false for an
// empty list.
func (l *LinkedList[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--
	return n.value, true
}

// Slice copies the list out into a fresh slice front to back.
func (l *LinkedList[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Values iterates the list front to back.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
