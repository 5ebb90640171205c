// Package timing provides low-overhead wall-time measurement for the
// benchmark harness.
package timing

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the runtime's monotonic clock in nanoseconds. It is
// cheaper than time.Now() because it returns a single int64 and skips
// constructing a time.Time.
//
// Note: go:linkname into the runtime may break in future Go versions,
// though it has been stable for years.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Stopwatch measures elapsed monotonic time from a fixed start point.
type Stopwatch struct {
	start int64
}

// Start returns a Stopwatch running from now.
func Start() Stopwatch {
	return Stopwatch{start: nanotime()}
}

// Elapsed returns the time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Duration(nanotime() - s.start)
}
