// Package bench is the producer/consumer benchmark harness.
//
// A benchmark run spawns P producers that collectively push the values
// [0, Items) into a container and C consumers that collectively drain
// exactly Items values, and measures wall time from goroutine launch
// to completion. The driver verifies conservation: every pushed value
// must be popped exactly once, checked by count and value sum.
package bench

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/conqlab/stack-queue-benchmarks/internal/timing"
)

// Config describes one benchmark configuration.
type Config struct {
	Producers int
	Consumers int
	Items     int
}

func (c Config) validate() error {
	if c.Producers < 1 || c.Consumers < 1 {
		return errors.Errorf("need at least one producer and one consumer, got %dp/%dc",
			c.Producers, c.Consumers)
	}
	if c.Items < 1 {
		return errors.Errorf("need at least one item, got %d", c.Items)
	}
	return nil
}

// PushFunc delivers one value on behalf of the given producer. It must
// not return until the value has been accepted or the run's context is
// cancelled; adapters over bounded containers spin internally.
type PushFunc func(producer, value int)

// PopFunc removes one value on behalf of the given consumer. ok is
// false when nothing was available right now; the driver yields and
// retries. Adapters over blocking containers use a timed pop so the
// driver regains control periodically.
type PopFunc func(consumer int) (value int, ok bool)

// Drive runs one producer/consumer workload and returns the elapsed
// wall time. It returns an error if the context is cancelled before
// the workload completes or if the popped multiset does not match the
// pushed one.
func Drive(ctx context.Context, cfg Config, push PushFunc, pop PopFunc) (time.Duration, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}

	// Hot loops poll a plain atomic instead of ctx.Done(): one load
	// per iteration keeps the abort check out of the measured cost.
	var aborted atomic.Bool
	stop := context.AfterFunc(ctx, func() { aborted.Store(true) })
	defer stop()

	var poppedSum atomic.Int64

	g := new(errgroup.Group)
	sw := timing.Start()

	next := 0
	for p := 0; p < cfg.Producers; p++ {
		share := cfg.Items / cfg.Producers
		if p < cfg.Items%cfg.Producers {
			share++
		}
		start, end := next, next+share
		next = end
		g.Go(func() error {
			for v := start; v < end; v++ {
				if aborted.Load() {
					return errors.Wrap(ctx.Err(), "producer aborted")
				}
				push(p, v)
			}
			return nil
		})
	}

	for c := 0; c < cfg.Consumers; c++ {
		share := cfg.Items / cfg.Consumers
		if c < cfg.Items%cfg.Consumers {
			share++
		}
		g.Go(func() error {
			var sum int64
			for got := 0; got < share; {
				if aborted.Load() {
					return errors.Wrap(ctx.Err(), "consumer aborted")
				}
				v, ok := pop(c)
				if !ok {
					runtime.Gosched()
					continue
				}
				sum += int64(v)
				got++
			}
			poppedSum.Add(sum)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	elapsed := sw.Elapsed()

	// Consumers drained exactly Items values between them; the sum
	// check catches loss plus duplication of unequal values.
	wantSum := int64(cfg.Items) * int64(cfg.Items-1) / 2
	if got := poppedSum.Load(); got != wantSum {
		return 0, errors.Errorf("conservation violated: popped values sum to %d, want %d", got, wantSum)
	}
	return elapsed, nil
}
