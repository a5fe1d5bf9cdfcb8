package fib

import (
	"fmt"
	"strconv"

	"github.com/karrick/congomap"
)

// Table is a memo that outlives a single call. Values computed by one
// Fib call are reused by every later one. It is safe for concurrent use.
type Table struct {
	series congomap.Congomap
}

// NewTable returns an empty table.
func NewTable() (*Table, error) {
	t := &Table{}

	series, err := congomap.NewTwoLevelMap(&congomap.Config{Lookup: t.lookup})
	if err != nil {
		return nil, fmt.Errorf("fib table: %w", err)
	}

	t.series = series
	return t, nil
}

// lookup runs on a miss. It recurses through LoadStore so every
// intermediate index ends up in the table.
func (t *Table) lookup(key string) (interface{}, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return int64(n), nil
	}

	first, err := t.load(n - 1)
	if err != nil {
		return nil, err
	}
	second, err := t.load(n - 2)
	if err != nil {
		return nil, err
	}
	return first + second, nil
}

func (t *Table) load(n int) (int64, error) {
	v, err := t.series.LoadStore(strconv.Itoa(n))
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// Fib returns the n-th Fibonacci number, filling the table as needed.
func (t *Table) Fib(n int) (int64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	return t.load(n)
}

// Len reports how many indices are stored.
func (t *Table) Len() int {
	count := 0
	for range t.series.Pairs() {
		count++
	}
	return count
}

// Close releases the underlying map.
func (t *Table) Close() error {
	return t.series.Close()
}
