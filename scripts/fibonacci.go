//go:build script

package main

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func Fibonacci(n int) int {
	return fib(n)
}
