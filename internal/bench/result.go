package bench

import (
	"fmt"
	"time"
)

// Result is one completed benchmark measurement.
type Result struct {
	Name      string
	Producers int
	Consumers int
	Items     int
	Elapsed   time.Duration
}

// Millis returns the elapsed time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r Result) String() string {
	return fmt.Sprintf("%-26s %8.3f ms", r.Name, r.Millis())
}
