package stack

// SliceStack is a LIFO stack backed by a growable slice.
//
// Not safe for concurrent use; wrap in Mutex or Cond.
type SliceStack[T any] struct {
	items []T
}

// NewSlice creates a SliceStack with room for hint elements before the
// first reallocation.
func NewSlice[T any](hint int) *SliceStack[T] {
	return &SliceStack[T]{items: make([]T, 0, hint)}
}

// Push places v on top of the stack.
func (s *SliceStack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns false if the stack is empty.
func (s *SliceStack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero // release the reference for GC
	s.items = s.items[:last]
	return v, true
}

// Len returns the number of elements.
func (s *SliceStack[T]) Len() int {
	return len(s.items)
}
