// Package proptest provides property-based testing infrastructure and generators.
package proptest

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the standard test parameters for property tests.
// Default: 1000 iterations for a good balance between coverage and speed.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	return params
}

// FastTestParameters returns reduced-iteration parameters for property tests
// whose single run is expensive.
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// IntRange generates integers in a range.
func IntRange(min, max int) gopter.Gen {
	return gen.IntRange(min, max)
}

// AnyString generates any string.
func AnyString() gopter.Gen {
	return gen.AnyString()
}

// SliceOf generates slices of elements from the given generator.
func SliceOf(elementGen gopter.Gen) gopter.Gen {
	return gen.SliceOf(elementGen)
}
