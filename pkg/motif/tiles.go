package motif

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/getmockd/stablerand/pkg/stablerand"
)

// MaxTiles bounds a single Tiles call.
const MaxTiles = 10000

// Variant is a tile style and its relative frequency.
type Variant struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// UniformVariants gives every name weight 1.
func UniformVariants(names ...string) []Variant {
	out := make([]Variant, len(names))
	for i, n := range names {
		out[i] = Variant{Name: n, Weight: 1}
	}
	return out
}

// ParseVariant parses "name" or "name=weight". A bare name has weight 1.
func ParseVariant(s string) (Variant, error) {
	name, weight, hasWeight := strings.Cut(strings.TrimSpace(s), "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return Variant{}, fmt.Errorf("%w: variant %q has no name", stablerand.ErrInvalidArgument, s)
	}
	if !hasWeight {
		return Variant{Name: name, Weight: 1}, nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return Variant{}, fmt.Errorf("%w: variant %q has invalid weight", stablerand.ErrInvalidArgument, s)
	}
	return Variant{Name: name, Weight: w}, nil
}

// ParseVariants parses each element with ParseVariant.
func ParseVariants(specs []string) ([]Variant, error) {
	out := make([]Variant, 0, len(specs))
	for _, s := range specs {
		v, err := ParseVariant(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Tile is the variant picked for one grid position.
type Tile struct {
	Index   int    `json:"index" yaml:"index"`
	Variant string `json:"variant" yaml:"variant"`
}

// checkVariants rejects a variant list no tile could be drawn from.
func checkVariants(variants []Variant) error {
	if len(variants) == 0 {
		return fmt.Errorf("%w: no tile variants", stablerand.ErrInvalidArgument)
	}
	var total float64
	for _, v := range variants {
		if v.Weight < 0 || math.IsNaN(v.Weight) || math.IsInf(v.Weight, 0) {
			return fmt.Errorf("%w: variant %q has invalid weight %g", stablerand.ErrInvalidArgument, v.Name, v.Weight)
		}
		total += v.Weight
	}
	if total == 0 {
		return fmt.Errorf("%w: tile variant weights sum to zero", stablerand.ErrInvalidArgument)
	}
	return nil
}

// Tiles picks a variant for each of count positions, one weighted draw per tile.
func Tiles(key string, count int, variants []Variant) ([]Tile, error) {
	if count < 0 || count > MaxTiles {
		return nil, fmt.Errorf("%w: tile count %d must be between 0 and %d", stablerand.ErrInvalidArgument, count, MaxTiles)
	}
	if err := checkVariants(variants); err != nil {
		return nil, err
	}
	names := make([]string, len(variants))
	weights := make([]float64, len(variants))
	for i, v := range variants {
		names[i] = v.Name
		weights[i] = v.Weight
	}

	g := stablerand.NewFromKey(key)
	tiles := make([]Tile, 0, count)
	for i := 0; i < count; i++ {
		name, err := stablerand.WeightedChoice(g, names, weights)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles = append(tiles, Tile{Index: i, Variant: name})
	}
	return tiles, nil
}
