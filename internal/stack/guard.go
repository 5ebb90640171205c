package stack

import (
	"sync"
	"time"
)

// Mutex wraps an unsynchronized stack with a mutex. Consumers that
// find the stack empty are expected to retry (spin); there is no
// blocking removal.
type Mutex[T any] struct {
	mu    sync.Mutex
	inner Stack[T]
}

// NewMutex wraps inner. The wrapper takes ownership: the inner stack
// must not be used directly afterwards.
func NewMutex[T any](inner Stack[T]) *Mutex[T] {
	return &Mutex[T]{inner: inner}
}

// Push places v on top of the stack.
func (s *Mutex[T]) Push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Push(v)
}

// TryPop removes and returns the top element without blocking.
// ok is false when the stack is empty.
func (s *Mutex[T]) TryPop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pop()
}

// Len returns a snapshot of the element count.
func (s *Mutex[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

// Cond wraps an unsynchronized stack with a mutex and a not-empty
// condition variable, giving consumers a blocking removal path.
type Cond[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	inner    Stack[T]
}

// NewCond wraps inner. The wrapper takes ownership of the inner stack.
func NewCond[T any](inner Stack[T]) *Cond[T] {
	s := &Cond[T]{inner: inner}
	s.notEmpty = sync.NewCond(&s.mu)
	return s
}

// Push places v on top of the stack and wakes at most one blocked
// consumer.
func (s *Cond[T]) Push(v T) {
	s.mu.Lock()
	s.inner.Push(v)
	s.mu.Unlock()
	s.notEmpty.Signal()
}

// TryPop removes and returns the top element without blocking.
func (s *Cond[T]) TryPop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pop()
}

// Pop removes and returns the top element, blocking until one is
// available.
func (s *Cond[T]) Pop() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inner.Len() == 0 {
		s.notEmpty.Wait()
	}
	v, _ := s.inner.Pop()
	return v
}

// PopTimeout removes and returns the top element, blocking up to d.
// ok is false if the stack is still empty at the deadline.
func (s *Cond[T]) PopTimeout(d time.Duration) (v T, ok bool) {
	deadline := time.Now().Add(d)
	timer := time.AfterFunc(d, func() {
		// Taking the lock orders the broadcast after any waiter that
		// saw an unexpired deadline, so the wakeup cannot be missed.
		s.mu.Lock()
		defer s.mu.Unlock()
		s.notEmpty.Broadcast()
	})
	defer timer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inner.Len() == 0 {
		if !time.Now().Before(deadline) {
			return v, false
		}
		s.notEmpty.Wait()
	}
	return s.inner.Pop()
}

// Len returns a snapshot of the element count.
func (s *Cond[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}
