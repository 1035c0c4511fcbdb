package arbitrary

import (
	"math"
	"testing"
)

func TestFloatShrinkHalves(t *testing.T) {
	arb := Float[float64](DefaultParams())

	g := arb.Shrink(100)
	want := 100.0
	for !g.IsExhausted() {
		want /= 2
		if got := g.Front(); got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
		g.Advance()
	}

	if want > zeroTolerance {
		t.Errorf("shrink stopped at %v, above the zero tolerance", want)
	}
}

func TestFloatShrinkNegative(t *testing.T) {
	arb := Float[float64](DefaultParams())

	g := arb.Shrink(-8)
	if got := g.Front(); got != -4 {
		t.Fatalf("expected -4, got %v", got)
	}

	last := g.Front()
	for !g.IsExhausted() {
		last = g.Front()
		g.Advance()
	}

	if math.Abs(last) > zeroTolerance {
		t.Errorf("last yielded value %v is not near zero", last)
	}
}

func TestFloatShrinkMagnitudeDecreases(t *testing.T) {
	arb := Float[float64](DefaultParams())

	prev := math.Abs(1337.5)
	for g := arb.Shrink(1337.5); !g.IsExhausted(); g.Advance() {
		cur := math.Abs(g.Front())
		if cur >= prev {
			t.Fatalf("magnitude did not decrease: %v -> %v", prev, cur)
		}
		prev = cur
	}
}

func TestFloatShrinkNearZeroStartsExhausted(t *testing.T) {
	arb := Float[float64](DefaultParams())

	if !arb.Shrink(0).IsExhausted() {
		t.Error("expected shrink of 0 to start exhausted")
	}
	if !arb.Shrink(zeroTolerance / 2).IsExhausted() {
		t.Error("expected shrink within tolerance to start exhausted")
	}
}

func TestFloatShrinkNonFinite(t *testing.T) {
	// Halving neither reduces NaN nor an infinity; the sequence exhausts
	// immediately instead of looping forever.
	arb := Float[float64](DefaultParams())

	if !arb.Shrink(math.NaN()).IsExhausted() {
		t.Error("expected shrink of NaN to start exhausted")
	}
	if !arb.Shrink(math.Inf(1)).IsExhausted() {
		t.Error("expected shrink of +Inf to start exhausted")
	}
	if !arb.Shrink(math.Inf(-1)).IsExhausted() {
		t.Error("expected shrink of -Inf to start exhausted")
	}
}

func TestFloatShrinkTermination(t *testing.T) {
	arb := Float[float64](DefaultParams())

	for _, v := range []float64{1, -1, 0.5, 1e300, -1e300, math.MaxFloat64} {
		steps := 0
		for g := arb.Shrink(v); !g.IsExhausted(); g.Advance() {
			steps++
			if steps > 2100 {
				t.Fatalf("shrink of %v did not terminate", v)
			}
		}
	}
}
