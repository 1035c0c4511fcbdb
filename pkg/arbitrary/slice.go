package arbitrary

import (
	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// sliceArbitrary composes an element capability into slices of that element
// type, with the same length and truncation policies as strings.
type sliceArbitrary[T any] struct {
	params  *Params
	element Arbitrary[T]
}

// SliceOf returns the Arbitrary instance for []T, built on the element
// type's own capability. The element instance supplies every element draw;
// slices of a type without a capability cannot be constructed.
func SliceOf[T any](p *Params, element Arbitrary[T]) Arbitrary[[]T] {
	return sliceArbitrary[T]{params: p, element: element}
}

// Generate yields an infinite stream of finite slices, one per step, each
// with a length in [MinLen, MaxLen] and elements pulled from the element
// capability's generator.
func (a sliceArbitrary[T]) Generate() *generator.Generator[[]T] {
	elements := a.element.Generate()
	return generator.New(func() optional.Optional[[]T] {
		n := a.params.randomLen()
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, elements.Front())
			elements.Advance()
		}
		return optional.Present(out)
	})
}

// Shrink truncates from the front: each step drops exactly one leading
// element, down to the empty slice, then exhausts.
func (a sliceArbitrary[T]) Shrink(v []T) *generator.Generator[[]T] {
	saved := v
	return generator.New(func() optional.Optional[[]T] {
		if len(saved) == 0 {
			return optional.Absent[[]T]()
		}
		saved = saved[1:]
		return optional.Present(saved)
	})
}

// SpecialCases yields the empty slice.
func (a sliceArbitrary[T]) SpecialCases() *generator.Generator[[]T] {
	return generator.FromSlice([][]T{{}})
}
