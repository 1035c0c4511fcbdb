package rng

import "testing"

func TestSeedDeterminism(t *testing.T) {
	a := NewWithSeed(42)
	b := NewWithSeed(42)

	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestSeedIndependence(t *testing.T) {
	a := NewWithSeed(1)
	b := NewWithSeed(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}

	if same == 100 {
		t.Error("different seeds produced identical streams")
	}
}

func TestIntNRange(t *testing.T) {
	r := NewWithSeed(7)

	for i := 0; i < 1000; i++ {
		if v := r.IntN(10); v < 0 || v >= 10 {
			t.Fatalf("IntN(10) out of range: %d", v)
		}
	}
}

func TestUintNRange(t *testing.T) {
	r := NewWithSeed(7)

	for i := 0; i < 1000; i++ {
		if v := r.UintN(10); v >= 10 {
			t.Fatalf("UintN(10) out of range: %d", v)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewWithSeed(7)

	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
	}
}

func TestNewIsSeeded(t *testing.T) {
	// Entropy-seeded sources should essentially never collide on their first
	// few draws.
	a := New()
	b := New()

	if a.Uint64() == b.Uint64() && a.Uint64() == b.Uint64() {
		t.Error("two entropy-seeded sources produced identical draws")
	}
}
