// Command loop times one counted summation loop over a million integers.
package main

import (
	"fmt"
	"io"
	"os"

	"coldbench/harness"
	"coldbench/workload"
)

func main() {
	report(os.Stdout)
}

func report(w io.Writer) {
	label := fmt.Sprintf("Go Loop sum to %d", workload.LoopN)
	_, _ = harness.Bench(w, label, func() int {
		return workload.LoopSum(workload.LoopN)
	})
}
