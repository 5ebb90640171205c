package baseline_test

import (
	"testing"

	"github.com/conqlab/stack-queue-benchmarks/internal/baseline"
	"github.com/conqlab/stack-queue-benchmarks/internal/conqueue"
	"github.com/conqlab/stack-queue-benchmarks/internal/stack"
)

// Sink variables to prevent the compiler from eliminating benchmark
// loops.
var sinkInt int
var sinkBool bool

// Single-goroutine push+pop round trips across every container the
// suite compares. These give the uncontended floor for each
// implementation; the harness measures the contended case.

func BenchmarkRoundTrip_ConQueue(b *testing.B) {
	q := conqueue.New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_Chan(b *testing.B) {
	q := baseline.NewChan[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_SPSC(b *testing.B) {
	q := baseline.NewSPSC[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_Deque(b *testing.B) {
	q := baseline.NewDeque[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_Sharded(b *testing.B) {
	q, err := baseline.NewSharded[int](1024, 1)
	if err != nil {
		b.Fatalf("NewSharded: %v", err)
	}
	push := q.Producer(0)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		push(i)
		val, ok = q.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_MutexSliceStack(b *testing.B) {
	s := stack.NewMutex[int](stack.NewSlice[int](1024))
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		s.Push(i)
		val, ok = s.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkRoundTrip_MutexListStack(b *testing.B) {
	s := stack.NewMutex[int](stack.NewList[int]())
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		s.Push(i)
		val, ok = s.TryPop()
	}
	sinkInt = val
	sinkBool = ok
}

// Contended round trips: producers on one side, the benchmark loop
// popping on the other.

func BenchmarkContended_ConQueue_4P(b *testing.B) {
	q := conqueue.New[int]()
	done := make(chan struct{})

	for p := 0; p < 4; p++ {
		go func() {
			for {
				select {
				case <-done:
					return
				default:
					q.Push(1)
				}
			}
		}()
	}

	b.ResetTimer()
	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		val, ok = q.TryPop()
	}
	b.StopTimer()
	close(done)
	sinkInt = val
	sinkBool = ok
}

func BenchmarkContended_Chan_4P(b *testing.B) {
	q := baseline.NewChan[int](1024)
	done := make(chan struct{})

	for p := 0; p < 4; p++ {
		go func() {
			for {
				select {
				case <-done:
					return
				default:
					q.TryPush(1)
				}
			}
		}()
	}

	b.ResetTimer()
	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		val, ok = q.TryPop()
	}
	b.StopTimer()
	close(done)
	sinkInt = val
	sinkBool = ok
}
