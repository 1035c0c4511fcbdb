package arbitrary

import (
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// intArbitrary covers every fixed-width signed and unsigned integer type with
// one policy: uniform sampling over the full inclusive [min, max] range of
// the width, and shrinking by halving toward zero.
type intArbitrary[T constraints.Integer] struct {
	params   *Params
	min, max T
}

// Int returns the Arbitrary instance for any fixed-width integer type.
func Int[T constraints.Integer](p *Params) Arbitrary[T] {
	min, max := intBounds[T]()
	return intArbitrary[T]{params: p, min: min, max: max}
}

// intBounds computes the inclusive domain of T from its bit width and
// signedness.
func intBounds[T constraints.Integer]() (minVal, maxVal T) {
	var zero T
	rt := reflect.TypeOf(zero)
	bits := uint(rt.Bits())
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		maxVal = T(uint64(1)<<(bits-1) - 1)
		minVal = T(uint64(1) << (bits - 1))
	default:
		minVal = 0
		maxVal = T(^uint64(0) >> (64 - bits))
	}
	return minVal, maxVal
}

// Generate yields an infinite stream, each element drawn uniformly from the
// full [min, max] range. Truncating raw 64-bit draws to the target width
// keeps every bit pattern equally likely.
func (a intArbitrary[T]) Generate() *generator.Generator[T] {
	return generator.New(func() optional.Optional[T] {
		return optional.Present(T(a.params.Rng.Uint64()))
	})
}

// Shrink halves the magnitude toward zero on every step, with truncation
// toward zero, yielding 0 exactly once before exhausting. The magnitude
// strictly decreases, so the sequence terminates after O(log |v|) steps.
func (a intArbitrary[T]) Shrink(v T) *generator.Generator[T] {
	saved := v
	return generator.New(func() optional.Optional[T] {
		if saved == 0 {
			return optional.Absent[T]()
		}
		saved /= 2
		return optional.Present(saved)
	})
}

// SpecialCases yields the domain boundaries: minimum, zero, maximum.
func (a intArbitrary[T]) SpecialCases() *generator.Generator[T] {
	return generator.FromSlice([]T{a.min, 0, a.max})
}
