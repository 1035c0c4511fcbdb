package arbitrary

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// zeroTolerance is the absolute bound below which a shrinking float counts
// as zero. Halving alone never reaches exact zero, so the stopping test is
// tolerance-based.
const zeroTolerance = 1e-6

// floatArbitrary covers float32 and float64: uniform sampling over
// [-max, max] and shrinking by halving toward zero.
type floatArbitrary[T constraints.Float] struct {
	params *Params
	limits floatLimits
}

// floatLimits are the width-dependent boundary values of a float type.
type floatLimits struct {
	max       float64
	subnormal float64
	normal    float64
}

// Float returns the Arbitrary instance for float32 or float64.
func Float[T constraints.Float](p *Params) Arbitrary[T] {
	var zero T
	limits := floatLimits{
		max:       math.MaxFloat64,
		subnormal: math.SmallestNonzeroFloat64,
		normal:    0x1p-1022,
	}
	if reflect.TypeOf(zero).Bits() == 32 {
		limits = floatLimits{
			max:       math.MaxFloat32,
			subnormal: math.SmallestNonzeroFloat32,
			normal:    0x1p-126,
		}
	}
	return floatArbitrary[T]{params: p, limits: limits}
}

// Generate yields an infinite stream drawn uniformly from [-max, max].
func (a floatArbitrary[T]) Generate() *generator.Generator[T] {
	return generator.New(func() optional.Optional[T] {
		v := (a.params.Rng.Float64()*2 - 1) * a.limits.max
		return optional.Present(T(v))
	})
}

// Shrink halves the value on every step until it comes within zeroTolerance
// of zero, then exhausts. Non-finite starting values exhaust immediately:
// halving neither reduces an infinity nor a NaN, and the sequence must
// terminate.
func (a floatArbitrary[T]) Shrink(v T) *generator.Generator[T] {
	saved := v
	return generator.New(func() optional.Optional[T] {
		f := float64(saved)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) <= zeroTolerance {
			return optional.Absent[T]()
		}
		saved /= 2
		return optional.Present(saved)
	})
}

// SpecialCases yields the domain boundaries together with the values most
// likely to break numeric code: NaN, infinity and the smallest subnormal and
// normal magnitudes.
func (a floatArbitrary[T]) SpecialCases() *generator.Generator[T] {
	return generator.FromSlice([]T{
		T(-a.limits.max),
		0,
		T(a.limits.max),
		T(math.NaN()),
		T(math.Inf(1)),
		T(a.limits.subnormal),
		T(a.limits.normal),
	})
}
