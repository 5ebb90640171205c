// Command quickbench compares the conqueue core against the channel
// baseline with single-threaded push/pop round trips.
//
// Usage:
//
//	go run ./cmd/quickbench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/conqlab/stack-queue-benchmarks/internal/baseline"
	"github.com/conqlab/stack-queue-benchmarks/internal/conqueue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "channel buffer size")
	flag.Parse()

	fmt.Printf("Round-trip comparison (%d iterations)\n", *iterations)
	fmt.Println("─────────────────────────────────────────────────")

	// Linked-list queue with internal locking
	q := conqueue.New[int]()
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		q.Push(i)
		q.TryPop()
	}
	conDur := time.Since(start)

	// Buffered channel
	ch := baseline.NewChan[int](*size)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		ch.TryPush(i)
		ch.TryPop()
	}
	chDur := time.Since(start)

	conPerOp := float64(conDur.Nanoseconds()) / float64(*iterations)
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (push + pop per iteration):\n")
	fmt.Printf("  ConQueue:  %v (%.2f ns/op)\n", conDur, conPerOp)
	fmt.Printf("  Channel:   %v (%.2f ns/op)\n", chDur, chPerOp)

	if chPerOp < conPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", conPerOp/chPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (ConQueue faster)\n", chPerOp/conPerOp)
	}

	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  ConQueue:  %.2f M ops/sec\n", 1000/conPerOp)
	fmt.Printf("  Channel:   %.2f M ops/sec\n", 1000/chPerOp)
}
