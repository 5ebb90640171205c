package baseline

import (
	"sync/atomic"
)

// SPSC is a bounded lock-free ring restricted to exactly one producer
// goroutine and one consumer goroutine. It plays the reader-writer
// queue role in the suite and is only scheduled for 1x1
// configurations; using it with more goroutines on either end is a
// data race.
type SPSC[T any] struct {
	buf  []T
	mask uint64

	// head and tail live on separate cache lines so the producer and
	// consumer do not invalidate each other's line on every operation.
	_    [56]byte //nolint:unused
	head atomic.Uint64
	_    [56]byte //nolint:unused
	tail atomic.Uint64
}

// NewSPSC creates an SPSC ring. The capacity is rounded up to the next
// power of two.
func NewSPSC[T any](capacity int) *SPSC[T] {
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}
	return &SPSC[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// TryPush adds v. Returns false if the ring is full.
// Only the producer goroutine may call TryPush.
func (r *SPSC[T]) TryPush(v T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail >= uint64(len(r.buf)) {
		return false
	}
	r.buf[head&r.mask] = v
	r.head.Store(head + 1) // publish
	return true
}

// TryPop removes and returns an element. Returns false if the ring is
// empty. Only the consumer goroutine may call TryPop.
func (r *SPSC[T]) TryPop() (T, bool) {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail >= head {
		var zero T
		return zero, false
	}
	v := r.buf[tail&r.mask]
	r.tail.Store(tail + 1) // consume
	return v, true
}

// Len returns the approximate number of buffered elements. The result
// may be stale by the time it is observed.
func (r *SPSC[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the ring capacity.
func (r *SPSC[T]) Cap() int {
	return len(r.buf)
}
