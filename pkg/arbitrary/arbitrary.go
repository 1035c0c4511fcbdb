// Package arbitrary defines the per-type generation capability and its
// instances for the primitive type lattice.
//
// An Arbitrary ties three operations to a type: random sampling over the
// type's full domain, a terminating sequence of strictly simpler candidates
// for counterexample minimization, and a finite enumeration of curated
// boundary values. A constraint-checking driver consumes exactly these three
// operations per parameter type; user types participate by implementing the
// same interface and registering with a Registry.
package arbitrary

import (
	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/rng"
)

// Arbitrary is the capability a type must supply to participate in value
// generation and shrinking.
type Arbitrary[T any] interface {
	// Generate returns a possibly-infinite stream of random samples of T.
	Generate() *generator.Generator[T]
	// Shrink returns a finite stream of candidates strictly simpler than v,
	// ordered from least to most simplified. Shrinking an already-minimal
	// value yields an exhausted generator.
	Shrink(v T) *generator.Generator[T]
	// SpecialCases returns a finite enumeration of boundary values for T.
	SpecialCases() *generator.Generator[T]
}

// Sequence length bounds applied by the string and slice instances.
const (
	DefaultMinLen = 1
	DefaultMaxLen = 32
)

// Params carries the tunables shared by arbitrary instances: the random
// source backing sampling and the length range for generated sequences.
//
// Instances hold their Params by pointer, so a single Params (and its random
// stream) can be shared by every instance of one property check while
// remaining independent from concurrent checks.
type Params struct {
	// Rng is the random source used for all sampling.
	Rng rng.Source

	// MinLen and MaxLen bound generated string and slice lengths, both
	// inclusive.
	MinLen int
	MaxLen int
}

// Option configures Params.
type Option func(*Params)

// WithSeed derives the random source deterministically from seed, making
// every sample stream reproducible.
func WithSeed(seed int64) Option {
	return func(p *Params) {
		p.Rng = rng.NewWithSeed(seed)
	}
}

// WithSource injects a custom random source.
func WithSource(src rng.Source) Option {
	return func(p *Params) {
		p.Rng = src
	}
}

// WithLengthRange overrides the generated sequence length bounds.
func WithLengthRange(minLen, maxLen int) Option {
	return func(p *Params) {
		p.MinLen = minLen
		p.MaxLen = maxLen
	}
}

// DefaultParams returns Params with an entropy-seeded random source and the
// default [1, 32] sequence length range.
func DefaultParams(opts ...Option) *Params {
	p := &Params{
		Rng:    rng.New(),
		MinLen: DefaultMinLen,
		MaxLen: DefaultMaxLen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// randomLen draws a sequence length in [MinLen, MaxLen].
func (p *Params) randomLen() int {
	if p.MaxLen <= p.MinLen {
		return p.MinLen
	}
	return p.MinLen + p.Rng.IntN(p.MaxLen-p.MinLen+1)
}
