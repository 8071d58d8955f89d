package main

import (
	"bytes"
	"regexp"
	"testing"
)

func TestReportFib35(t *testing.T) {
	var buf bytes.Buffer
	report(&buf)
	re := regexp.MustCompile(`^Go fib\(35\) = 9227465\nDuration: \d+\.\d{2} ms\n$`)
	if !re.Match(buf.Bytes()) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
