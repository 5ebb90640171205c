package baseline

// Chan adapts a buffered channel to the benchmark surface. It is the
// natural Go baseline: safe for any number of producers and consumers,
// with both blocking and non-blocking operations built in.
type Chan[T any] struct {
	ch chan T
}

// NewChan creates a Chan with the given buffer capacity.
func NewChan[T any](capacity int) *Chan[T] {
	return &Chan[T]{ch: make(chan T, capacity)}
}

// Push adds v, blocking while the buffer is full.
func (q *Chan[T]) Push(v T) {
	q.ch <- v
}

// TryPush adds v without blocking. Returns false if the buffer is full.
func (q *Chan[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes and returns an element, blocking while the buffer is
// empty.
func (q *Chan[T]) Pop() T {
	return <-q.ch
}

// TryPop removes and returns an element without blocking.
// ok is false when the buffer is empty.
func (q *Chan[T]) TryPop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of buffered elements.
func (q *Chan[T]) Len() int {
	return len(q.ch)
}

// Cap returns the buffer capacity.
func (q *Chan[T]) Cap() int {
	return cap(q.ch)
}
