package fib

import "fmt"

// Cache stores already computed Fibonacci numbers keyed by index.
type Cache interface {
	Load(n int) (int64, bool)
	Store(n int, v int64)
}

// MapCache is the default Cache, a plain map. It is not safe for
// concurrent use.
type MapCache map[int]int64

func (c MapCache) Load(n int) (int64, bool) {
	v, ok := c[n]
	return v, ok
}

func (c MapCache) Store(n int, v int64) {
	c[n] = v
}

// Memoized returns the n-th Fibonacci number in linear time. Every call
// gets its own cache, discarded on return.
func Memoized(n int) (int64, error) {
	return MemoizedWithCache(n, make(MapCache))
}

// MemoizedWithCache is Memoized with a caller supplied cache. Entries
// already in c are trusted as is. A nil c, or a nil MapCache, is replaced
// by a fresh cache scoped to this call.
func MemoizedWithCache(n int, c Cache) (int64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	if m, ok := c.(MapCache); c == nil || ok && m == nil {
		c = make(MapCache)
	}
	return memoized(n, c), nil
}

func memoized(n int, c Cache) int64 {
	if v, ok := c.Load(n); ok {
		return v
	}

	var v int64
	if n <= 1 {
		v = int64(n)
	} else {
		v = memoized(n-1, c) + memoized(n-2, c)
	}

	c.Store(n, v)
	return v
}

// Sequence returns fib(0) through fib(k-1), sharing one cache.
func Sequence(k int) ([]int64, error) {
	if k < 0 {
		return nil, fmt.Errorf("sequence of %d: %w", k, ErrNegative)
	}
	if k == 0 {
		return []int64{}, nil
	}
	if err := check(k - 1); err != nil {
		return nil, err
	}

	c := make(MapCache, k)
	seq := make([]int64, k)
	for i := range seq {
		seq[i] = memoized(i, c)
	}
	return seq, nil
}
