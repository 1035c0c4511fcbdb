// Package rng provides the injectable randomness source used by value
// generation.
//
// Generation never reaches for ambient global randomness: every arbitrary
// instance owns (or is handed) a Source, so concurrent property checks can
// run with independent, non-contending random streams.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	randv2 "math/rand/v2"
)

// Source is the sampling capability value generation depends on.
type Source interface {
	// Uint64 returns a uniformly distributed uint64.
	Uint64() uint64
	// Float64 returns a uniformly distributed float in [0, 1).
	Float64() float64
	// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// UintN returns a uniformly distributed uint in [0, n). It panics if n == 0.
	UintN(n uint) uint
}

// PCG64 is a seedable Source backed by the PCG generator from math/rand/v2.
type PCG64 struct {
	rng *randv2.Rand
}

var _ Source = (*PCG64)(nil)

// New returns a PCG64 seeded from the operating system's entropy source.
func New() *PCG64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return NewWithSeed(int64(binary.LittleEndian.Uint64(buf[:])))
}

// NewWithSeed returns a PCG64 with a deterministic state derived from seed.
// The same seed always yields the same sample stream.
func NewWithSeed(seed int64) *PCG64 {
	x := uint64(seed) ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xda942042e4dd58b5)
	return &PCG64{rng: randv2.New(randv2.NewPCG(hi, lo))}
}

// Uint64 returns a uniformly distributed uint64.
func (p *PCG64) Uint64() uint64 {
	return p.rng.Uint64()
}

// Float64 returns a uniformly distributed float in [0, 1).
func (p *PCG64) Float64() float64 {
	return p.rng.Float64()
}

// IntN returns a uniformly distributed int in [0, n).
func (p *PCG64) IntN(n int) int {
	return p.rng.IntN(n)
}

// UintN returns a uniformly distributed uint in [0, n).
func (p *PCG64) UintN(n uint) uint {
	return uint(p.rng.Uint64N(uint64(n)))
}

// splitmix64 expands a single 64-bit seed into well-mixed PCG state words.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
