package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportPrimes(t *testing.T) {
	var buf bytes.Buffer
	report(&buf)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "Go Primes up to 10000 = 1229" {
		t.Fatalf("label line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Duration: ") || !strings.HasSuffix(lines[1], " ms") {
		t.Fatalf("duration line = %q", lines[1])
	}
}
