package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 us"},
		{4*time.Second + 210*time.Millisecond + 5*time.Microsecond, "4 s 210 ms"},
		{90 * time.Second, "1 m 30 s"},
	}
	for _, tt := range tests {
		if got := formatTotal(tt.d); got != tt.want {
			t.Errorf("formatTotal(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	fib, _ := findBenchmark("fib")
	results := []runResult{
		{bench: fib, engine: engineGo, result: 9227465, elapsed: 40 * time.Millisecond},
		{bench: fib, engine: engineYaegi, result: 9227465, elapsed: 4 * time.Second, allocBytes: 2048},
	}
	var buf bytes.Buffer
	writeSummary(&buf, results, 4040*time.Millisecond)
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "40.00 ms") || !strings.Contains(lines[0], "0 B allocated") {
		t.Errorf("native line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2.0 kB allocated") || !strings.Contains(lines[1], "(100x Go)") {
		t.Errorf("interpreted line = %q", lines[1])
	}
	if lines[2] != "2 runs in 4 s 40 ms" {
		t.Errorf("total line = %q", lines[2])
	}
}

func TestCompletionMessage(t *testing.T) {
	if got := completionMessage(nil, time.Second); got != "" {
		t.Errorf("empty results message = %q", got)
	}
	one := []runResult{{engine: engineGo}}
	if got := completionMessage(one, 2*time.Second); got != "1 benchmark run finished in 2 s" {
		t.Errorf("message = %q", got)
	}
}
