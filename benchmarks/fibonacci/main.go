// Command fibonacci times one naive recursive fib(35).
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
	label := fmt.Sprintf("Go fib(%d)", workload.FibN)
	_, _ = harness.Bench(w, label, func() int {
		return workload.Native.Fibonacci(workload.FibN)
	})
}
