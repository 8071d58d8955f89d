package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportStringOperations(t *testing.T) {
	var buf bytes.Buffer
	report(&buf)
	if !strings.HasPrefix(buf.String(), "Go String operations = 100000 iterations\nDuration: ") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
