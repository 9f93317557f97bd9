package listutil

import "sync"

// SyncList wraps a slice behind a single mutex. Every method takes the
// lock for the duration of that one call only, so a sequence of calls is
// not atomic; callers needing multi-step atomicity, iteration included,
// must go through Do. This mirrors the classic synchronized-wrapper
// contract and its documented limitation.
type SyncList[T any] struct {
	mu sync.Mutex
	s  []T
}

// Synchronized wraps slice into a SyncList. The slice header is taken
// over, not copied; the caller must stop using the original directly.
func Synchronized[T any](s []T) *SyncList[T] {
	return &SyncList[T]{s: s}
}

// Len returns the number of elements.
func (l *SyncList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.s)
}

// Get returns the element at index i.
func (l *SyncList[T]) Get(i int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s[i]
}

// Set replaces the element at index i.
func (l *SyncList[T]) Set(i int, value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s[i] = value
}

// Append adds values to the end of the list.
func (l *SyncList[T]) Append(values ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s = append(l.s, values...)
}

// RemoveAt removes and returns the element at index i.
func (l *SyncList[T]) RemoveAt(i int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := l.s[i]
	l.s = append(l.s[:i], l.s[i+1:]...)
	return v
}

// Slice copies the list out into a fresh slice under the lock.
func (l *SyncList[T]) Slice() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Clone(l.s)
}

// Do runs fn with the lock held, giving it direct access to the backing
// slice. This is the one way to get atomicity across multiple steps.
func (l *SyncList[T]) Do(fn func(s *[]T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.s)
}
