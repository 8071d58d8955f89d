package harness

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

var durationRE = regexp.MustCompile(`^Duration: \d+\.\d{2} ms$`)

func TestRunCallsOnce(t *testing.T) {
	calls := 0
	m := Run(func() int {
		calls++
		return 42
	})
	if calls != 1 {
		t.Fatalf("workload called %d times, want 1", calls)
	}
	if m.Result != 42 {
		t.Fatalf("result = %d, want 42", m.Result)
	}
	if m.Elapsed < 0 {
		t.Fatalf("elapsed = %v, want >= 0", m.Elapsed)
	}
}

func TestRunMeasuresWorkload(t *testing.T) {
	m := Run(func() struct{} {
		time.Sleep(5 * time.Millisecond)
		return struct{}{}
	})
	if m.Elapsed < 5*time.Millisecond {
		t.Fatalf("elapsed = %v, want >= 5ms", m.Elapsed)
	}
	if m.Milliseconds() < 5 {
		t.Fatalf("Milliseconds() = %f, want >= 5", m.Milliseconds())
	}
}

func TestDurationLine(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "Duration: 0.00 ms"},
		{1500 * time.Microsecond, "Duration: 1.50 ms"},
		{1234567 * time.Nanosecond, "Duration: 1.23 ms"},
		{2 * time.Second, "Duration: 2000.00 ms"},
		{5 * time.Microsecond, "Duration: 0.01 ms"},
	}
	for _, tt := range tests {
		got := DurationLine(tt.d)
		if got != tt.want {
			t.Errorf("DurationLine(%v) = %q, want %q", tt.d, got, tt.want)
		}
		if !durationRE.MatchString(got) {
			t.Errorf("DurationLine(%v) = %q does not match format", tt.d, got)
		}
	}
}

func TestReportTwoLines(t *testing.T) {
	var buf bytes.Buffer
	m := Measurement[int]{Result: 9227465, Elapsed: 41070 * time.Microsecond}
	if err := Report(&buf, "Go fib(35)", m); err != nil {
		t.Fatalf("Report: %v", err)
	}
	want := "Go fib(35) = 9227465\nDuration: 41.07 ms\n"
	if buf.String() != want {
		t.Fatalf("Report wrote %q, want %q", buf.String(), want)
	}
}

type stringer int

func (s stringer) String() string { return "custom" }

func TestReportUsesStringer(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, "x", Measurement[stringer]{Result: 7}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "x = custom\n") {
		t.Fatalf("Report wrote %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBenchReportsWriteError(t *testing.T) {
	m, err := Bench(failWriter{}, "label", func() int { return 3 })
	if err == nil {
		t.Fatal("expected write error")
	}
	if m.Result != 3 {
		t.Fatalf("result = %d, want 3", m.Result)
	}
}

func TestBenchOutput(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Bench(&buf, "Go Primes up to 10", func() int { return 4 }); err != nil {
		t.Fatalf("Bench: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "Go Primes up to 10 = 4" {
		t.Errorf("label line = %q", lines[0])
	}
	if !durationRE.MatchString(lines[1]) {
		t.Errorf("duration line = %q", lines[1])
	}
}
