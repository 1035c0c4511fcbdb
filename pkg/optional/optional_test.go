package optional

import (
	"errors"
	"testing"
)

func TestPresent(t *testing.T) {
	o := Present(42)

	if o.IsAbsent() {
		t.Error("expected present optional")
	}

	if !o.IsPresent() {
		t.Error("expected IsPresent to be true")
	}

	if got := o.Unwrap(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestPresentZeroValue(t *testing.T) {
	// The zero value of the payload is a legitimate present value and must
	// stay distinguishable from absence.
	o := Present(0)

	if o.IsAbsent() {
		t.Error("expected Present(0) to be present")
	}

	if got := o.Unwrap(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestAbsent(t *testing.T) {
	o := Absent[string]()

	if !o.IsAbsent() {
		t.Error("expected absent optional")
	}

	if o.IsPresent() {
		t.Error("expected IsPresent to be false")
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var o Optional[int]

	if !o.IsAbsent() {
		t.Error("expected zero-value optional to be absent")
	}
}

func TestUnwrapAbsentPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on unwrap of absent optional")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyValue) {
			t.Errorf("expected ErrEmptyValue, got %#v", r)
		}
	}()

	Absent[int]().Unwrap()
}

func TestGet(t *testing.T) {
	if v, ok := Present("x").Get(); !ok || v != "x" {
		t.Errorf("expected (x, true), got (%q, %v)", v, ok)
	}

	if v, ok := Absent[string]().Get(); ok || v != "" {
		t.Errorf("expected (\"\", false), got (%q, %v)", v, ok)
	}
}

func TestOrElse(t *testing.T) {
	if got := Present(1).OrElse(2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}

	if got := Absent[int]().OrElse(2); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestFold(t *testing.T) {
	got := Fold(Present(21),
		func() int { return -1 },
		func(v int) int { return v * 2 },
	)
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	got = Fold(Absent[int](),
		func() int { return -1 },
		func(v int) int { return v * 2 },
	)
	if got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestMap(t *testing.T) {
	doubled := Map(Present(3), func(v int) int { return v * 2 })
	if got := doubled.Unwrap(); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}

	absent := Map(Absent[int](), func(v int) int { return v * 2 })
	if !absent.IsAbsent() {
		t.Error("expected mapped absent to stay absent")
	}
}
