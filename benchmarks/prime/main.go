// Command prime times one trial-division census of the primes below 10000.
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
	label := fmt.Sprintf("Go Primes up to %d", workload.PrimeLimit)
	_, _ = harness.Bench(w, label, func() int {
		return workload.CountPrimes(workload.PrimeLimit)
	})
}
