// Package fib computes Fibonacci numbers.
//
// Naive and Memoized are the two reference evaluators. Table keeps its
// memo between calls, Mod works modulo m for indices far past MaxN.
package fib

// Naive returns the n-th Fibonacci number by plain double recursion.
// It runs in exponential time and keeps no state between calls.
func Naive(n int) (int64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	return naive(n), nil
}

func naive(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return naive(n-1) + naive(n-2)
}
