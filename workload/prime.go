package workload

// IsPrime reports whether n is prime by trial division. The bound is the
// integer guard i*i <= n; no floating square root is taken.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// CountPrimes counts the primes in [2, limit).
func CountPrimes(limit int) int {
	count := 0
	for i := 2; i < limit; i++ {
		if IsPrime(i) {
			count++
		}
	}
	return count
}
