// Command stringops times 100000 passes of case conversion, replace, join and
// split over a fixed sentence.
package main

import (
	"io"
	"os"

	"coldbench/harness"
	"coldbench/workload"
)

func main() {
	report(os.Stdout)
}

func report(w io.Writer) {
	_, _ = harness.Bench(w, "Go String operations", func() workload.Passes {
		return workload.StringOperations(workload.Text, workload.StringIterations)
	})
}
