// Package conqueue provides an unbounded thread-safe FIFO queue.
//
// The queue is built from a singly-linked node chain guarded by a
// single mutex, with a condition variable signalling "queue became
// non-empty" to blocked consumers. It supports non-blocking, blocking
// and timed removal, plus deep copy and move between live queues.
//
// All synchronization is internal: any number of goroutines may call
// any combination of methods concurrently. Elements are delivered in
// global FIFO order (concurrent pushes interleave in the order their
// critical sections complete). Each push wakes at most one blocked
// consumer.
package conqueue

import (
	"sync"
	"sync/atomic"
	"time"
)

// node is one element of the chain. The queue owns the front node and
// each node reaches its successor through next.
type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is an unbounded FIFO queue safe for concurrent use.
//
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	// id imposes a total order on queue instances, used to acquire
	// two queue locks without deadlocking (see lockPair).
	id uint64

	mu       sync.Mutex
	notEmpty *sync.Cond

	front *node[T]
	back  *node[T] // non-owning fast path for O(1) append
	size  int
}

var nextID atomic.Uint64

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{id: nextID.Add(1)}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends v at the back of the queue and wakes at most one
// blocked consumer. Push always succeeds.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.pushLocked(v)
	q.mu.Unlock()

	// One element was added, so wake exactly one waiter. Waking more
	// would stampede consumers at a queue holding a single item.
	q.notEmpty.Signal()
}

// TryPop removes and returns the front element. It never blocks:
// ok is false when the queue is empty at the time of the call.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.front == nil {
		return v, false
	}
	return q.popLocked(), true
}

// Pop removes and returns the front element, blocking until one is
// available. There is no external cancellation; callers that need a
// bounded wait should use PopTimeout.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	// Wait loops: a wakeup only means "re-check", the element may have
	// been taken by another consumer in the meantime.
	for q.front == nil {
		q.notEmpty.Wait()
	}
	return q.popLocked()
}

// PopTimeout removes and returns the front element, blocking up to d.
// It returns ok=false, with the queue unmodified, if the queue is
// still empty when the timeout elapses.
func (q *Queue[T]) PopTimeout(d time.Duration) (v T, ok bool) {
	deadline := time.Now().Add(d)

	// The timer takes the queue lock before broadcasting. A waiter
	// that observed an unexpired deadline therefore reaches Wait
	// before the broadcast can fire, so the wakeup cannot be lost.
	timer := time.AfterFunc(d, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.notEmpty.Broadcast()
	})
	defer timer.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for q.front == nil {
		if !time.Now().Before(deadline) {
			return v, false
		}
		q.notEmpty.Wait()
	}
	return q.popLocked(), true
}

// TryPeek copies the front element without removing it.
// ok is false when the queue is empty.
func (q *Queue[T]) TryPeek() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.front == nil {
		return v, false
	}
	return q.front.value, true
}

// Len returns the number of elements. The result is a snapshot: a
// concurrent mutation may invalidate it immediately after return.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Empty reports whether the queue holds no elements. Snapshot
// semantics, as with Len.
func (q *Queue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.front == nil
}

// Clone returns a new queue holding a deep copy of the receiver's
// elements, in the same order. The source is locked for the duration
// of the copy; the clone is unshared until Clone returns.
func (q *Queue[T]) Clone() *Queue[T] {
	dst := New[T]()
	q.mu.Lock()
	defer q.mu.Unlock()
	for n := q.front; n != nil; n = n.next {
		dst.pushLocked(n.value)
	}
	return dst
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// Both queues stay valid; src is unchanged. Safe against concurrent
// CopyFrom/MoveFrom in the opposite direction.
func (q *Queue[T]) CopyFrom(src *Queue[T]) {
	if q == src {
		return
	}
	lockPair(q, src)
	q.front, q.back, q.size = nil, nil, 0
	for n := src.front; n != nil; n = n.next {
		q.pushLocked(n.value)
	}
	woken := q.size > 0
	unlockPair(q, src)
	if woken {
		// Consumers blocked on q can now be served.
		q.notEmpty.Broadcast()
	}
}

// MoveFrom transfers src's chain into the receiver, discarding the
// receiver's previous contents and leaving src empty. No element is
// copied. Safe against concurrent CopyFrom/MoveFrom in the opposite
// direction.
func (q *Queue[T]) MoveFrom(src *Queue[T]) {
	if q == src {
		return
	}
	lockPair(q, src)
	q.front, q.back, q.size = src.front, src.back, src.size
	src.front, src.back, src.size = nil, nil, 0
	woken := q.size > 0
	unlockPair(q, src)
	if woken {
		q.notEmpty.Broadcast()
	}
}

// pushLocked appends v. Caller holds q.mu (or q is unshared).
func (q *Queue[T]) pushLocked(v T) {
	n := &node[T]{value: v}
	if q.front == nil {
		q.front = n
	} else {
		q.back.next = n
	}
	q.back = n
	q.size++
}

// popLocked removes and returns the front value. Caller holds q.mu
// and has checked that the queue is non-empty.
func (q *Queue[T]) popLocked() T {
	n := q.front
	if n == q.back {
		q.back = nil
	}
	q.front = n.next
	n.next = nil
	q.size--
	return n.value
}

// lockPair acquires both queue locks in id order. The order is a
// property of the instances, not of the call, so two goroutines
// assigning in opposite directions cannot deadlock.
func lockPair[T any](a, b *Queue[T]) {
	if a.id < b.id {
		a.mu.Lock()
		b.mu.Lock()
	} else {
		b.mu.Lock()
		a.mu.Lock()
	}
}

func unlockPair[T any](a, b *Queue[T]) {
	a.mu.Unlock()
	b.mu.Unlock()
}
