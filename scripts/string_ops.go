//go:build script

package main

import "strings"

func StringOperations(text string, iterations int) int {
	n := 0
	for i := 0; i < iterations; i++ {
		upper := strings.ToUpper(text)
		lower := strings.ToLower(text)
		replaced := strings.ReplaceAll(text, "SKY", "GO")
		joined := strings.Join([]string{"a", "b", "c"}, "-")
		split := strings.Split(text, " ")
		_ = upper
		_ = lower
		_ = replaced
		_ = joined
		_ = split
		n++
	}
	return n
}
