package arbitrary

import (
	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// stringArbitrary builds strings from the character instance: a random
// length in [MinLen, MaxLen] filled by repeated character draws.
type stringArbitrary struct {
	params *Params
	runes  Arbitrary[rune]
}

// String returns the Arbitrary instance for string.
func String(p *Params) Arbitrary[string] {
	return stringArbitrary{params: p, runes: Rune(p)}
}

// Generate yields an infinite stream of finite strings, one per step, each
// with a length in [MinLen, MaxLen].
func (a stringArbitrary) Generate() *generator.Generator[string] {
	chars := a.runes.Generate()
	return generator.New(func() optional.Optional[string] {
		n := a.params.randomLen()
		buf := make([]rune, 0, n)
		for i := 0; i < n; i++ {
			buf = append(buf, chars.Front())
			chars.Advance()
		}
		return optional.Present(string(buf))
	})
}

// Shrink truncates from the front: each step drops exactly one leading
// character, down to the empty string, then exhausts. A value of length n
// shrinks in exactly n steps.
func (a stringArbitrary) Shrink(v string) *generator.Generator[string] {
	saved := []rune(v)
	return generator.New(func() optional.Optional[string] {
		if len(saved) == 0 {
			return optional.Absent[string]()
		}
		saved = saved[1:]
		return optional.Present(string(saved))
	})
}

// SpecialCases yields the empty string.
func (a stringArbitrary) SpecialCases() *generator.Generator[string] {
	return generator.FromSlice([]string{""})
}
