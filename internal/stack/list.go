package stack

// ListStack is a LIFO stack backed by a head-linked node chain.
// Every Push allocates one node.
//
// Not safe for concurrent use; wrap in Mutex or Cond.
type ListStack[T any] struct {
	top  *entry[T]
	size int
}

type entry[T any] struct {
	value T
	below *entry[T]
}

// NewList creates an empty ListStack.
func NewList[T any]() *ListStack[T] {
	return &ListStack[T]{}
}

// Push places v on top of the stack.
func (s *ListStack[T]) Push(v T) {
	s.top = &entry[T]{value: v, below: s.top}
	s.size++
}

// Pop removes and returns the top element.
// Returns false if the stack is empty.
func (s *ListStack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	e := s.top
	s.top = e.below
	e.below = nil
	s.size--
	return e.value, true
}

// Len returns the number of elements.
func (s *ListStack[T]) Len() int {
	return s.size
}
