// Package workload holds the timed computations. Each one is a pure function
// of its input; the constants below are the fixed inputs every implementation
// is measured with.
package workload

// Fixed benchmark inputs. Changing any of these breaks comparability with
// the other language implementations.
const (
	FibN             = 35
	PrimeLimit       = 10000
	StringIterations = 100000
	LoopN            = 1000000

	Text        = "Hello World from SKY Programming Language"
	Search      = "SKY"
	Replacement = "GO"
	Separator   = "-"
	SplitSep    = " "
)

// JoinParts is the sequence joined on every string-operations pass.
var JoinParts = []string{"a", "b", "c"}

// Set is one implementation of every workload. The compiled implementation
// is Native; interpreted ones are built by the scripted package.
type Set struct {
	Fibonacci        func(n int) int
	CountPrimes      func(limit int) int
	StringOperations func(text string, iterations int) int
	LoopSum          func(n int) int
}

// Native is the compiled Go implementation.
var Native = Set{
	Fibonacci:   fib,
	CountPrimes: CountPrimes,
	StringOperations: func(text string, iterations int) int {
		return int(StringOperations(text, iterations))
	},
	LoopSum: LoopSum,
}
