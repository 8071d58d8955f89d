// Package harness times a single invocation of a workload and prints the
// two-line report shared by every benchmark.
package harness

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Measurement is the outcome of one timed run.
type Measurement[T any] struct {
	Result  T
	Elapsed time.Duration
}

// Milliseconds returns the elapsed time in fractional milliseconds.
func (m Measurement[T]) Milliseconds() float64 {
	return float64(m.Elapsed) / float64(time.Millisecond)
}

// Run calls fn exactly once between two clock samples. time.Now carries a
// monotonic reading, so wall clock adjustments do not skew the result.
func Run[T any](fn func() T) Measurement[T] {
	start := time.Now()
	v := fn()
	elapsed := time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return Measurement[T]{Result: v, Elapsed: elapsed}
}

// DurationLine formats d as "Duration: 12.34 ms".
func DurationLine(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return "Duration: " + strconv.FormatFloat(ms, 'f', 2, 64) + " ms"
}

// Report writes the label line and the duration line for m.
func Report[T any](w io.Writer, label string, m Measurement[T]) error {
	_, err := fmt.Fprintf(w, "%s = %v\n%s\n", label, m.Result, DurationLine(m.Elapsed))
	return err
}

// Bench runs fn once and reports it under label.
func Bench[T any](w io.Writer, label string, fn func() T) (Measurement[T], error) {
	m := Run(fn)
	return m, Report(w, label, m)
}
