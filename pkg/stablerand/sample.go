package stablerand

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Int returns an integer in [min, max], inclusive on both ends.
func (g *Generator) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: int range min %d > max %d", ErrInvalidArgument, min, max)
	}
	// The offset is computed in uint64 so that spans wider than MaxInt convert
	// the same way on every platform. A span of 0 means the full 2^64 range.
	span := uint64(max) - uint64(min) + 1
	size := float64(span)
	if span == 0 {
		size = twoTo64
	}
	x := math.Floor(g.Float() * size)
	var off uint64
	if x >= size {
		// float64 rounding can land on the span itself.
		off = span - 1
	} else {
		off = uint64(x)
	}
	return int(uint64(min) + off), nil
}

// FloatRange returns a float in [min, max). When min == max it returns min.
func (g *Generator) FloatRange(min, max float64) (float64, error) {
	if err := checkFloatRange(min, max); err != nil {
		return 0, err
	}
	// The explicit conversion rounds the product, which stops the compiler from
	// fusing it into an FMA on platforms that have one.
	return float64(g.Float()*(max-min)) + min, nil
}

func checkFloatRange(min, max float64) error {
	switch {
	case math.IsNaN(min) || math.IsNaN(max):
		return fmt.Errorf("%w: float range bound is NaN", ErrInvalidArgument)
	case math.IsInf(min, 0) || math.IsInf(max, 0):
		return fmt.Errorf("%w: float range bound is infinite", ErrInvalidArgument)
	case min > max:
		return fmt.Errorf("%w: float range min %g > max %g", ErrInvalidArgument, min, max)
	}
	return nil
}

// Chance reports whether one draw falls below p.
// p <= 0 is never true and p >= 1 is always true; both still consume a draw.
func (g *Generator) Chance(p float64) bool {
	return g.Float() < p
}

// UUID returns a version 4 UUID built from 16 draws.
func (g *Generator) UUID() uuid.UUID {
	var u uuid.UUID
	for i := range u {
		// floor(Float()*256) is the top byte of the raw draw.
		u[i] = byte(g.Uint32() >> 24)
	}
	u[6] = (u[6] & 0x0f) | 0x40
	u[8] = (u[8] & 0x3f) | 0x80
	return u
}

// Choice returns one element of items, picked with a single draw.
func Choice[T any](d Drawer, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: choice from empty slice", ErrInvalidArgument)
	}
	return items[index(d, len(items))], nil
}

// Shuffle returns a permuted copy of items using Fisher-Yates from the last
// index down. items is never modified.
func Shuffle[T any](d Drawer, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := index(d, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// WeightedChoice returns one element of items with probability proportional to
// its weight, using a single draw. Zero weights are allowed but never picked.
func WeightedChoice[T any](d Drawer, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: weighted choice from empty slice", ErrInvalidArgument)
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%w: %d items but %d weights", ErrInvalidArgument, len(items), len(weights))
	}
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return zero, fmt.Errorf("%w: weight %d is %g", ErrInvalidArgument, i, w)
		}
		total += w
	}
	if total == 0 {
		return zero, fmt.Errorf("%w: weights sum to zero", ErrInvalidArgument)
	}

	r := d.Float() * total
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		if r < w {
			return items[i], nil
		}
		r -= w
	}
	// Rounding can leave r just above the final bucket.
	return items[last], nil
}

// index maps one draw onto [0, n).
func index(d Drawer, n int) int {
	i := int(math.Floor(d.Float() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
