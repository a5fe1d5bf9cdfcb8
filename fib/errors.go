package fib

import (
	"errors"
	"fmt"
)

// MaxN is the largest index whose Fibonacci number fits in an int64.
const MaxN = 92

var (
	// ErrNegative rejects an index or sequence length below zero.
	ErrNegative = errors.New("negative fibonacci index")
	// ErrOverflow rejects an index above MaxN.
	ErrOverflow = errors.New("fibonacci number overflows int64")
	// ErrModulus rejects a zero modulus passed to Mod.
	ErrModulus = errors.New("modulus must be positive")
)

func check(n int) error {
	if n < 0 {
		return fmt.Errorf("fib(%d): %w", n, ErrNegative)
	}
	if n > MaxN {
		return fmt.Errorf("fib(%d): %w", n, ErrOverflow)
	}
	return nil
}
