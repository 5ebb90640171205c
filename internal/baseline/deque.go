package baseline

import (
	"sync"

	"github.com/ef-ds/deque"
)

// Deque is a mutex-guarded FIFO over ef-ds/deque: the thin-adapter
// pattern of wrapping an already-safe-to-grow library structure in a
// single lock. Unbounded; safe for any number of producers and
// consumers.
type Deque[T any] struct {
	mu sync.Mutex
	d  deque.Deque
}

// NewDeque creates an empty Deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Push appends v at the back. Always succeeds.
func (q *Deque[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.PushBack(v)
}

// TryPush appends v at the back. The deque is unbounded, so TryPush
// never reports false; it exists to satisfy the Container contract.
func (q *Deque[T]) TryPush(v T) bool {
	q.Push(v)
	return true
}

// TryPop removes and returns the front element without blocking.
// ok is false when the deque is empty.
func (q *Deque[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns a snapshot of the element count.
func (q *Deque[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.Len()
}
