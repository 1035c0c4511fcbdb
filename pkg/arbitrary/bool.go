package arbitrary

import "github.com/NCrashed/dcheck/pkg/generator"

// boolArbitrary enumerates the two boolean values instead of sampling: the
// domain is small enough to cover exhaustively.
type boolArbitrary struct{}

// Bool returns the Arbitrary instance for bool.
func Bool() Arbitrary[bool] {
	return boolArbitrary{}
}

// Generate yields exactly true then false, never randomly.
func (boolArbitrary) Generate() *generator.Generator[bool] {
	return generator.FromSlice([]bool{true, false})
}

// Shrink yields nothing: a boolean is already minimal.
func (boolArbitrary) Shrink(bool) *generator.Generator[bool] {
	return generator.Empty[bool]()
}

// SpecialCases yields nothing: Generate already covers the whole domain.
func (boolArbitrary) SpecialCases() *generator.Generator[bool] {
	return generator.Empty[bool]()
}
