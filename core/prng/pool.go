package prng

import (
	"errors"
	"strconv"
)

var ErrEmptyPool = errors.New("prng: empty pool")

// Salted returns a fresh generator for one decision point.
func Salted(seed uint32, salt string) *Rand {
	return New(HashString(strconv.FormatUint(uint64(seed), 10) + "_" + salt))
}

// Draw returns the first value of the salted generator.
func Draw(seed uint32, salt string) float64 {
	return Salted(seed, salt).Float64()
}

// PickIndex returns the index Pick would select from a pool of size n.
func PickIndex(seed uint32, salt string, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyPool
	}
	return Salted(seed, salt).Intn(n), nil
}

// Pick deterministically selects one element of pool for (seed, salt).
func Pick[T any](seed uint32, salt string, pool []T) (T, error) {
	idx, err := PickIndex(seed, salt, len(pool))
	if err != nil {
		var zero T
		return zero, err
	}
	return pool[idx], nil
}

// MustPick is Pick for compile-time constant pools. An empty pool is a
// configuration bug and panics.
func MustPick[T any](seed uint32, salt string, pool []T) T {
	v, err := Pick(seed, salt, pool)
	if err != nil {
		panic(err)
	}
	return v
}
