package fib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModMatchesMemoized(t *testing.T) {
	for _, m := range []uint64{2, 7, 10, 1000000007, math.MaxUint64} {
		for n := 0; n <= MaxN; n++ {
			want, err := Memoized(n)
			require.NoError(t, err)

			got, err := Mod(uint64(n), m)
			require.NoError(t, err)
			assert.Equal(t, uint64(want)%m, got, "fib(%d) mod %d", n, m)
		}
	}
}

func TestModLargeIndex(t *testing.T) {
	// Pisano period of 10 is 60.
	a, err := Mod(1000000, 10)
	require.NoError(t, err)
	b, err := Mod(1000000%60, 10)
	require.NoError(t, err)
	assert.Equal(t, b, a)

	got, err := Mod(100, 1000000007)
	require.NoError(t, err)
	// fib(100) = 354224848179261915075
	assert.Equal(t, uint64(687995182), got)
}

func TestModEdgeModuli(t *testing.T) {
	got, err := Mod(50, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)

	_, err = Mod(50, 0)
	assert.True(t, errors.Is(err, ErrModulus))
}
