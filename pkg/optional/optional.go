// Package optional provides a generic optional-value container.
//
// An Optional either holds a value or is absent. Presence is tracked by an
// explicit discriminant rather than a sentinel value, so every bit pattern of
// the payload type (including its zero value) remains a legitimate present
// value.
package optional

import "errors"

// ErrEmptyValue is the panic value raised when an absent Optional is
// unwrapped. Unwrapping absence is a programming error, not a recoverable
// condition.
var ErrEmptyValue = errors.New("optional: unwrap of absent value")

// Optional holds either a value of type T or nothing.
// The zero value of Optional is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Present returns an Optional holding v.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent returns an Optional holding nothing.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports whether the Optional is empty.
func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Unwrap returns the held value. It panics with ErrEmptyValue if the
// Optional is absent.
func (o Optional[T]) Unwrap() T {
	if !o.present {
		panic(ErrEmptyValue)
	}
	return o.value
}

// Get returns the held value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the held value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Fold invokes exactly one of the two branches and returns its result:
// onPresent with the held value, or onAbsent if the Optional is empty.
func Fold[T, U any](o Optional[T], onAbsent func() U, onPresent func(T) U) U {
	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}

// Map applies f to the held value if present, propagating absence otherwise.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if o.present {
		return Present(f(o.value))
	}
	return Absent[U]()
}
