package generator

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Weighted pairs a value with its relative selection frequency.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice picks one item with probability proportional to its weight.
// When float accumulation leaves nothing selected the first item is returned.
// ok is false only for an empty slice.
func WeightedChoice[T any](rng *rand.Rand, items []Weighted[T]) (choice T, ok bool) {
	if len(items) == 0 {
		return choice, false
	}
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	r := rng.Float64() * total
	for _, it := range items {
		r -= it.Weight
		if r <= 0 {
			return it.Value, true
		}
	}
	return items[0].Value, true
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// intBetween returns an int in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// floatBetween returns a value in [lo, hi) rounded to cents.
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return roundCents(rng.Float64()*(hi-lo) + lo)
}

func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// idReader feeds uuid generation from the injected source so seeded runs
// produce identical ids.
type idReader struct {
	rng *rand.Rand
}

func (r idReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
