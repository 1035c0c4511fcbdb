package arbitrary

import (
	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// alphabet is the fixed character pool sampled by Rune and String. It mixes
// scripts of different encoded widths (ASCII, Latin-1 supplement, Greek,
// Cyrillic, CJK, emoji) so generated text exercises both narrow and wide
// encodings.
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	" \t!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	"àáâäçèéêëìíîïñòóôöùúûüýÿ" +
	"αβγδεζηθικλμνξοπρστυφχψω" +
	"абвгдеёжзийклмнопрстуфхцчшщъыьэюя" +
	"一二三四五六七八九十日月火水木金土" +
	"あいうえおかきくけこ" +
	"😀😅🎲🔥✓")

// runeArbitrary samples characters from the curated alphabet. A character is
// atomic: it neither shrinks nor has boundary values of its own.
type runeArbitrary struct {
	params *Params
}

// Rune returns the character Arbitrary instance. It backs String and can be
// used directly, but is not bound in a Registry: Go's rune is an alias of
// int32, which resolves to the integer capability there.
func Rune(p *Params) Arbitrary[rune] {
	return runeArbitrary{params: p}
}

// Generate yields an infinite stream drawn uniformly from the alphabet.
func (a runeArbitrary) Generate() *generator.Generator[rune] {
	return generator.New(func() optional.Optional[rune] {
		return optional.Present(alphabet[a.params.Rng.IntN(len(alphabet))])
	})
}

// Shrink yields nothing: a character is already minimal.
func (a runeArbitrary) Shrink(rune) *generator.Generator[rune] {
	return generator.Empty[rune]()
}

// SpecialCases yields nothing.
func (a runeArbitrary) SpecialCases() *generator.Generator[rune] {
	return generator.Empty[rune]()
}
