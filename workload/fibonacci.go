package workload

import (
	"errors"
	"fmt"
)

// ErrNegativeInput is returned for a negative Fibonacci index.
var ErrNegativeInput = errors.New("negative input")

// Fibonacci returns F(n) computed by naive double recursion. The input is
// checked once here so the recursion itself carries no extra branch.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci(%d): %w", n, ErrNegativeInput)
	}
	return fib(n), nil
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
