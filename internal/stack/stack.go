// Package stack provides LIFO containers for the benchmark suite.
//
// Two plain, unsynchronized backings are offered:
//   - SliceStack: growable slice (contiguous storage)
//   - ListStack: head-linked node chain
//
// Neither backing is safe for concurrent use on its own. The Mutex and
// Cond wrappers add the two synchronization strategies the suite
// compares: mutex-only with spinning consumers, and mutex plus
// condition variable with blocking consumers.
package stack

// Stack is a minimal unsynchronized LIFO surface.
type Stack[T any] interface {
	// Push places v on top of the stack.
	Push(v T)

	// Pop removes and returns the top element.
	// Returns false if the stack is empty.
	Pop() (T, bool)

	// Len returns the number of elements.
	Len() int
}
