package fib

import (
	"fmt"
	"math/bits"
)

// Mod returns fib(n) mod m using fast doubling, in O(log n) steps.
// Unlike the other evaluators n is not bounded by MaxN.
func Mod(n, m uint64) (uint64, error) {
	if m == 0 {
		return 0, fmt.Errorf("fib(%d) mod %d: %w", n, m, ErrModulus)
	}
	if m == 1 {
		return 0, nil
	}

	// a = F(k), b = F(k+1), walking the bits of n from the top.
	var a, b uint64 = 0, 1
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2F(k+1) - F(k))
		c := mulMod(a, subMod(addMod(b, b, m), a, m), m)
		// F(2k+1) = F(k)^2 + F(k+1)^2
		d := addMod(mulMod(a, a, m), mulMod(b, b, m), m)

		if n>>uint(i)&1 == 0 {
			a, b = c, d
		} else {
			a, b = d, addMod(c, d, m)
		}
	}
	return a, nil
}

func addMod(x, y, m uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 || sum >= m {
		sum -= m
	}
	return sum
}

func subMod(x, y, m uint64) uint64 {
	if x >= y {
		return x - y
	}
	return m - (y - x)
}

func mulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}
