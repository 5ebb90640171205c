package baseline

import (
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// shardedRing is the slice of the go-lock-free-ring surface the
// adapter needs: per-shard writes and single-consumer reads.
type shardedRing interface {
	Write(shard uint64, v any) bool
	TryRead() (any, bool)
}

// Sharded adapts the external lock-free sharded ring to the benchmark
// surface. Producers write to distinct shards to avoid contention;
// exactly one consumer goroutine drains. The suite only schedules it
// for single-consumer configurations.
type Sharded[T any] struct {
	ring   shardedRing
	shards uint64
}

// NewSharded creates a Sharded ring with the given total capacity,
// split across the shard count.
func NewSharded[T any](capacity, shards int) (*Sharded[T], error) {
	r, err := ring.NewShardedRing(uint64(capacity), uint64(shards))
	if err != nil {
		return nil, err
	}
	return &Sharded[T]{ring: r, shards: uint64(shards)}, nil
}

// Producer returns a push function bound to the shard for producer id.
// Each producer goroutine should obtain its own function and keep
// using it; the returned function reports false when the shard is
// full.
func (s *Sharded[T]) Producer(id int) func(v T) bool {
	shard := uint64(id) % s.shards
	return func(v T) bool {
		return s.ring.Write(shard, v)
	}
}

// TryPop removes and returns an element from any shard. Returns false
// when all shards are empty. Only one consumer goroutine may call
// TryPop.
func (s *Sharded[T]) TryPop() (T, bool) {
	v, ok := s.ring.TryRead()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
