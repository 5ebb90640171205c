// Command benchrunner runs the full producer/consumer benchmark suite
// and writes results to a CSV file.
//
// Usage:
//
//	go run ./cmd/benchrunner -n 100000 -o results.csv
//	go run ./cmd/benchrunner -p 1 -p 2 -p 4 -c 1 -c 2 -c 4
package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/conqlab/stack-queue-benchmarks/internal/bench"
	"github.com/conqlab/stack-queue-benchmarks/internal/logging"
)

type options struct {
	Items     int    `short:"n" long:"items" default:"100000" description:"total elements per benchmark"`
	Producers []int  `short:"p" long:"producers" description:"producer counts to sweep (default: 1 2 4)"`
	Consumers []int  `short:"c" long:"consumers" description:"consumer counts to sweep (default: 1 2 4)"`
	Out       string `short:"o" long:"out" default:"results.csv" description:"CSV output path"`
	Verbose   bool   `short:"v" long:"verbose" description:"enable debug logging"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if len(opts.Producers) == 0 {
		opts.Producers = []int{1, 2, 4}
	}
	if len(opts.Consumers) == 0 {
		opts.Consumers = []int{1, 2, 4}
	}

	log, err := logging.New(opts.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(opts, log); err != nil {
		log.Fatalf("benchmark run failed: %v", err)
	}
}

func run(opts options, log *zap.SugaredLogger) error {
	reporter, err := bench.NewCSVReporter(opts.Out)
	if err != nil {
		return err
	}
	defer reporter.Close() //nolint:errcheck

	ctx := context.Background()

	fmt.Println("Running all benchmarks:")
	fmt.Println("========================")
	fmt.Println()

	for _, producers := range opts.Producers {
		for _, consumers := range opts.Consumers {
			cfg := bench.Config{
				Producers: producers,
				Consumers: consumers,
				Items:     opts.Items,
			}
			fmt.Printf("%d producer(s), %d consumer(s):\n", producers, consumers)

			for _, b := range bench.Suite(cfg) {
				log.Infof("running %s (%dp/%dc, %d items)",
					b.Name, producers, consumers, opts.Items)

				elapsed, err := b.Run(ctx)
				if err != nil {
					return err
				}

				res := bench.Result{
					Name:      b.Name,
					Producers: producers,
					Consumers: consumers,
					Items:     opts.Items,
					Elapsed:   elapsed,
				}
				fmt.Printf("  %s\n", res)
				if err := reporter.Record(res); err != nil {
					return err
				}
			}
			fmt.Println()
		}
	}

	if err := reporter.Close(); err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", opts.Out)
	return nil
}
