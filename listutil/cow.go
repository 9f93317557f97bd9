package listutil

import (
	"iter"
	"sync"

	"go.uber.org/atomic"
)

// CopyOnWriteList is a thread-safe list where every mutation replaces
// the whole backing slice under a mutex, while reads take a lock-free
// snapshot through an atomic pointer. Cheap to read, expensive to write,
// like its java.util.concurrent namesake.
type CopyOnWriteList[T any] struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]T]
}

// NewCopyOnWrite returns a CopyOnWriteList populated with a copy of
// values.
func NewCopyOnWrite[T any](values ...T) *CopyOnWriteList[T] {
	l := &CopyOnWriteList[T]{}
	s := Clone(values)
	if s == nil {
		s = []T{}
	}
	l.snap.Store(&s)
	return l
}

// snapshot returns the current backing slice. The slice is never
// mutated after being published, only replaced.
func (l *CopyOnWriteList[T]) snapshot() []T {
	return *l.snap.Load()
}

// Len returns the number of elements at the time of the call.
func (l *CopyOnWriteList[T]) Len() int {
	return len(l.snapshot())
}

// Get returns the element at index i in the current snapshot.
func (l *CopyOnWriteList[T]) Get(i int) T {
	return l.snapshot()[i]
}

// Append adds values to the end of the list.
func (l *CopyOnWriteList[T]) Append(values ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	next := make([]T, 0, len(cur)+len(values))
	next = append(next, cur...)
	next = append(next, values...)
	l.snap.Store(&next)
}

// Set replaces the element at index i.
func (l *CopyOnWriteList[T]) Set(i int, value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := Clone(l.snapshot())
	next[i] = value
	l.snap.Store(&next)
}

// RemoveAt removes and returns the element at index i.
func (l *CopyOnWriteList[T]) RemoveAt(i int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	v := cur[i]
	next := make([]T, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	l.snap.Store(&next)
	return v
}

// Slice copies the current snapshot out into a fresh slice.
func (l *CopyOnWriteList[T]) Slice() []T {
	return Clone(l.snapshot())
}

// Values iterates over the snapshot taken when iteration starts.
// Concurrent mutations are not observed mid-iteration.
func (l *CopyOnWriteList[T]) Values() iter.Seq[T] {
	snap := l.snapshot()
	return func(yield func(T) bool) {
		for _, v := range snap {
			if !yield(v) {
				return
			}
		}
	}
}
