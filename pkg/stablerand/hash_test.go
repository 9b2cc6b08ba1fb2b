package stablerand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashKey_Golden(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want uint32
	}{
		{"digits", "42", 2309403825},
		{"empty", "", 167010153},
		{"latin1", "héllo", 3960454150},
		{"surrogate pair", "a\U0001F600", 843564621},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeedFromKey(tt.key))
		})
	}
}

func TestHasher_NextIsASequence(t *testing.T) {
	h := HashKey("42")
	assert.Equal(t, uint32(2309403825), h.Next())
	assert.Equal(t, uint32(1206695092), h.Next())
	assert.Equal(t, uint32(3789162703), h.Next())
}

func TestHashKey_IndependentHashers(t *testing.T) {
	a := HashKey("route/home")
	b := HashKey("route/home")
	a.Next()
	a.Next()

	// Advancing one hasher must not move another built from the same key.
	assert.Equal(t, SeedFromKey("route/home"), b.Next())
}

func TestHashKey_InvalidUTF8HashesAsReplacement(t *testing.T) {
	assert.Equal(t, SeedFromKey("a\uFFFD"), SeedFromKey("a\xff"))
}
