package stablerand

import (
	"math/bits"
	"unicode/utf16"
)

// xmur3 constants.
const (
	hashInit  uint32 = 1779033703
	hashMul   uint32 = 3432918353
	hashMixA  uint32 = 2246822507
	hashMixB  uint32 = 3266489909
	hashShift        = 13
)

// Hasher derives a sequence of well-mixed 32-bit values from a string key.
type Hasher struct {
	h uint32
}

// HashKey consumes key and returns a Hasher positioned before its first output.
//
// The key is hashed as UTF-16 code units, so characters outside the Basic
// Multilingual Plane contribute a surrogate pair and invalid UTF-8 bytes hash
// as U+FFFD.
func HashKey(key string) *Hasher {
	units := utf16.Encode([]rune(key))
	h := hashInit ^ uint32(len(units))
	for _, c := range units {
		h = (h ^ uint32(c)) * hashMul
		h = bits.RotateLeft32(h, hashShift)
	}
	return &Hasher{h: h}
}

// Next advances the mixing state and returns the next value.
func (x *Hasher) Next() uint32 {
	h := x.h
	h = (h ^ h>>16) * hashMixA
	h = (h ^ h>>13) * hashMixB
	h ^= h >> 16
	x.h = h
	return h
}

// SeedFromKey returns the first value of HashKey(key).
func SeedFromKey(key string) uint32 {
	return HashKey(key).Next()
}
