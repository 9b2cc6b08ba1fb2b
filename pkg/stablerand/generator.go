package stablerand

// mulberryIncrement is the Weyl sequence step of Mulberry32.
const mulberryIncrement uint32 = 0x6D2B79F5

// twoTo32 scales a uint32 into [0, 1).
const twoTo32 = 1 << 32

// twoTo64 is the size of the full 64-bit integer range.
const twoTo64 = 1 << 64

// Drawer is anything that yields floats in [0, 1).
// *Generator is the implementation used throughout this module.
type Drawer interface {
	Float() float64
}

// Generator is a Mulberry32 pseudo-random generator.
// The zero value is a valid generator seeded with 0.
type Generator struct {
	state uint32
	seed  uint32
	draws uint64
}

// New returns a generator seeded with seed.
func New(seed uint32) *Generator {
	return &Generator{state: seed, seed: seed}
}

// NewFromKey returns a generator seeded with SeedFromKey(key).
func NewFromKey(key string) *Generator {
	return New(SeedFromKey(key))
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// Draws returns how many 32-bit values have been drawn since creation or the last Reset.
func (g *Generator) Draws() uint64 {
	return g.draws
}

// Reset rewinds the generator to its initial seed.
func (g *Generator) Reset() {
	g.state = g.seed
	g.draws = 0
}

// Uint32 returns the next raw 32-bit value.
func (g *Generator) Uint32() uint32 {
	g.state += mulberryIncrement
	s := g.state
	t := (s ^ s>>15) * (s | 1)
	t ^= t + (t^t>>7)*(t|61)
	g.draws++
	return t ^ t>>14
}

// Float returns the next value in [0, 1).
func (g *Generator) Float() float64 {
	return float64(g.Uint32()) / twoTo32
}

// Uint64 draws two values, high word first.
// It makes *Generator a math/rand/v2 Source, so rand.New(g) shares this sequence.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}
