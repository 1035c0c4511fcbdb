// Package generator provides a lazy, pull-based, possibly-infinite sequence
// abstraction.
//
// A Generator wraps a step function returning an Optional: Present values are
// the elements of the sequence, the first Absent marks permanent exhaustion.
// No buffering happens beyond the single current element, so a Generator may
// represent an unbounded source; consumers pull only as many elements as they
// need.
package generator

import (
	"errors"

	"github.com/NCrashed/dcheck/pkg/optional"
)

// ErrEmptyState is the panic value raised when the front of an exhausted
// Generator is read.
var ErrEmptyState = errors.New("generator: front of exhausted generator")

// Step computes the next element of a sequence, or Absent when the sequence
// ends. A Step may capture private mutable state; that state is exclusively
// owned by the one Generator driving it.
type Step[T any] func() optional.Optional[T]

// Generator is a single-pass cursor over the sequence produced by a Step.
//
// Exhaustion is an absorbing state: once the step yields Absent the Generator
// stays exhausted forever, regardless of further Advance calls. A Generator
// is not restartable; construct a fresh one to replay a sequence.
type Generator[T any] struct {
	step  Step[T]
	front optional.Optional[T]
}

// New constructs a Generator over step and performs the initial pull, so the
// front is populated before first use. Construction never fails: if the first
// pull yields Absent the Generator simply starts exhausted.
func New[T any](step Step[T]) *Generator[T] {
	return &Generator[T]{step: step, front: step()}
}

// Front returns the current element. It panics with ErrEmptyState if the
// Generator is exhausted.
func (g *Generator[T]) Front() T {
	if g.front.IsAbsent() {
		panic(ErrEmptyState)
	}
	return g.front.Unwrap()
}

// Value returns the current element and whether the Generator still holds one.
func (g *Generator[T]) Value() (T, bool) {
	return g.front.Get()
}

// IsExhausted reports whether the sequence has ended.
func (g *Generator[T]) IsExhausted() bool {
	return g.front.IsAbsent()
}

// Advance replaces the front with the next element of the sequence. Once
// exhausted the Generator stays exhausted: the step function is not consulted
// again.
func (g *Generator[T]) Advance() {
	if g.front.IsAbsent() {
		return
	}
	g.front = g.step()
}
