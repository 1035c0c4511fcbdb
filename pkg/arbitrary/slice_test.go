package arbitrary

import (
	"reflect"
	"testing"

	"github.com/NCrashed/dcheck/pkg/generator"
)

func TestSliceGenerateLength(t *testing.T) {
	p := DefaultParams(WithSeed(21))
	g := SliceOf(p, Int[int32](p)).Generate()

	for i := 0; i < 500; i++ {
		n := len(g.Front())
		if n < DefaultMinLen || n > DefaultMaxLen {
			t.Fatalf("generated slice length %d outside [%d, %d]", n, DefaultMinLen, DefaultMaxLen)
		}
		g.Advance()
	}
}

func TestSliceOfStrings(t *testing.T) {
	// Composition nests: slices of strings pull every element through the
	// string capability.
	p := DefaultParams(WithSeed(22))
	g := SliceOf(p, String(p)).Generate()

	for i := 0; i < 50; i++ {
		for _, s := range g.Front() {
			if len(s) == 0 {
				t.Fatal("element string below minimum length")
			}
		}
		g.Advance()
	}
}

func TestSliceShrink(t *testing.T) {
	p := DefaultParams()
	arb := SliceOf(p, Int[int](p))

	got := generator.Collect(arb.Shrink([]int{1, 2, 3}))
	want := [][]int{{2, 3}, {3}, {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("invalid shrinks: %#v", got)
	}
}

func TestSliceShrinkEmptyStartsExhausted(t *testing.T) {
	p := DefaultParams()
	arb := SliceOf(p, Int[int](p))

	if !arb.Shrink(nil).IsExhausted() {
		t.Error("expected shrink of nil slice to start exhausted")
	}
	if !arb.Shrink([]int{}).IsExhausted() {
		t.Error("expected shrink of empty slice to start exhausted")
	}
}

func TestSliceShrinkStepCount(t *testing.T) {
	p := DefaultParams()
	arb := SliceOf(p, Int[int](p))

	v := []int{9, 8, 7, 6, 5}
	steps := 0
	for g := arb.Shrink(v); !g.IsExhausted(); g.Advance() {
		steps++
	}
	if steps != len(v) {
		t.Errorf("shrink took %d steps, expected %d", steps, len(v))
	}
}

func TestSliceSpecialCases(t *testing.T) {
	p := DefaultParams()
	got := generator.Collect(SliceOf(p, Bool()).SpecialCases())

	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("invalid special cases: %#v", got)
	}
}
