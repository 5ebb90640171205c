package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/conqlab/stack-queue-benchmarks/internal/baseline"
	"github.com/conqlab/stack-queue-benchmarks/internal/conqueue"
	"github.com/conqlab/stack-queue-benchmarks/internal/stack"
)

const (
	// ringCapacity bounds the lock-free comparators, matching the
	// buffer the channel baseline gets.
	ringCapacity = 1024

	// popSlice is how long a blocking consumer waits before the
	// driver regains control to check for cancellation.
	popSlice = 5 * time.Millisecond
)

// Benchmark is one named workload ready to run.
type Benchmark struct {
	Name string
	Run  func(ctx context.Context) (time.Duration, error)
}

// Suite builds the benchmark list for one configuration. The bounded
// single-consumer comparators are only included where their contracts
// hold, mirroring how the reader-writer variants are gated.
func Suite(cfg Config) []Benchmark {
	list := []Benchmark{
		conqueueSpin(cfg),
		conqueueBlocking(cfg),
		stackSpin(cfg, "slice_stack (mutex)", func() stack.Stack[int] { return stack.NewSlice[int](cfg.Items) }),
		stackBlocking(cfg, "slice_stack (cv)", func() stack.Stack[int] { return stack.NewSlice[int](cfg.Items) }),
		stackSpin(cfg, "list_stack (mutex)", func() stack.Stack[int] { return stack.NewList[int]() }),
		stackBlocking(cfg, "list_stack (cv)", func() stack.Stack[int] { return stack.NewList[int]() }),
		channel(cfg),
		dequeMutex(cfg),
	}
	if cfg.Consumers == 1 {
		list = append(list, sharded(cfg))
	}
	if cfg.Producers == 1 && cfg.Consumers == 1 {
		list = append(list, spsc(cfg))
	}
	return list
}

func conqueueSpin(cfg Config) Benchmark {
	return Benchmark{
		Name: "conqueue (mutex)",
		Run: func(ctx context.Context) (time.Duration, error) {
			q := conqueue.New[int]()
			return Drive(ctx, cfg,
				func(_, v int) { q.Push(v) },
				func(int) (int, bool) { return q.TryPop() },
			)
		},
	}
}

func conqueueBlocking(cfg Config) Benchmark {
	return Benchmark{
		Name: "conqueue (cv)",
		Run: func(ctx context.Context) (time.Duration, error) {
			q := conqueue.New[int]()
			return Drive(ctx, cfg,
				func(_, v int) { q.Push(v) },
				func(int) (int, bool) { return q.PopTimeout(popSlice) },
			)
		},
	}
}

func stackSpin(cfg Config, name string, newStack func() stack.Stack[int]) Benchmark {
	return Benchmark{
		Name: name,
		Run: func(ctx context.Context) (time.Duration, error) {
			s := stack.NewMutex[int](newStack())
			return Drive(ctx, cfg,
				func(_, v int) { s.Push(v) },
				func(int) (int, bool) { return s.TryPop() },
			)
		},
	}
}

func stackBlocking(cfg Config, name string, newStack func() stack.Stack[int]) Benchmark {
	return Benchmark{
		Name: name,
		Run: func(ctx context.Context) (time.Duration, error) {
			s := stack.NewCond[int](newStack())
			return Drive(ctx, cfg,
				func(_, v int) { s.Push(v) },
				func(int) (int, bool) { return s.PopTimeout(popSlice) },
			)
		},
	}
}

func channel(cfg Config) Benchmark {
	return Benchmark{
		Name: "channel",
		Run: func(ctx context.Context) (time.Duration, error) {
			q := baseline.NewChan[int](ringCapacity)
			return Drive(ctx, cfg,
				spinPush(ctx, q.TryPush),
				func(int) (int, bool) { return q.TryPop() },
			)
		},
	}
}

func dequeMutex(cfg Config) Benchmark {
	return Benchmark{
		Name: "deque (mutex)",
		Run: func(ctx context.Context) (time.Duration, error) {
			q := baseline.NewDeque[int]()
			return Drive(ctx, cfg,
				func(_, v int) { q.Push(v) },
				func(int) (int, bool) { return q.TryPop() },
			)
		},
	}
}

func sharded(cfg Config) Benchmark {
	return Benchmark{
		Name: "sharded_ring (lock-free)",
		Run: func(ctx context.Context) (time.Duration, error) {
			q, err := baseline.NewSharded[int](ringCapacity, cfg.Producers)
			if err != nil {
				return 0, err
			}
			pushers := make([]func(int) bool, cfg.Producers)
			for p := range pushers {
				pushers[p] = q.Producer(p)
			}
			return Drive(ctx, cfg,
				func(p, v int) {
					push := pushers[p]
					for !push(v) {
						if ctx.Err() != nil {
							return
						}
						runtime.Gosched()
					}
				},
				func(int) (int, bool) { return q.TryPop() },
			)
		},
	}
}

func spsc(cfg Config) Benchmark {
	return Benchmark{
		Name: "spsc_ring (lock-free)",
		Run: func(ctx context.Context) (time.Duration, error) {
			q := baseline.NewSPSC[int](ringCapacity)
			return Drive(ctx, cfg,
				spinPush(ctx, q.TryPush),
				func(int) (int, bool) { return q.TryPop() },
			)
		},
	}
}

// spinPush adapts a bounded TryPush to the harness contract: retry
// until accepted, bailing out if the run is cancelled.
func spinPush(ctx context.Context, tryPush func(int) bool) PushFunc {
	return func(_, v int) {
		for !tryPush(v) {
			if ctx.Err() != nil {
				return
			}
			runtime.Gosched()
		}
	}
}
