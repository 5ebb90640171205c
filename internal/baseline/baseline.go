// Package baseline provides the comparator containers the benchmark
// suite measures the conqueue core against.
//
// The set covers the usual alternatives:
//   - Chan: buffered channel, the standard library answer
//   - SPSC: lock-free single-producer single-consumer ring
//   - Sharded: lock-free multi-producer ring (external library)
//   - Deque: mutex-guarded growable deque (external library)
//
// SPSC and Sharded are bounded and restricted in how many goroutines
// may touch each end; the suite only schedules them for configurations
// that satisfy their contracts.
package baseline

// Container is the non-blocking contract shared by the comparators.
//
// TryPush returns false when the container is full; TryPop returns
// false when it is empty.
type Container[T any] interface {
	TryPush(T) bool
	TryPop() (T, bool)
}
