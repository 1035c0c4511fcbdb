package generator

import "github.com/NCrashed/dcheck/pkg/optional"

// Empty returns an already-exhausted Generator.
func Empty[T any]() *Generator[T] {
	return New(func() optional.Optional[T] {
		return optional.Absent[T]()
	})
}

// FromSlice returns a finite Generator yielding the elements of values in
// order. The slice is not copied; callers must not mutate it while iterating.
func FromSlice[T any](values []T) *Generator[T] {
	i := 0
	return New(func() optional.Optional[T] {
		if i >= len(values) {
			return optional.Absent[T]()
		}
		v := values[i]
		i++
		return optional.Present(v)
	})
}

// Map returns a Generator applying f to every element of g. The source
// generator must not be pulled by anyone else afterwards.
func Map[T, U any](g *Generator[T], f func(T) U) *Generator[U] {
	first := true
	return New(func() optional.Optional[U] {
		if first {
			first = false
		} else {
			g.Advance()
		}
		if g.IsExhausted() {
			return optional.Absent[U]()
		}
		return optional.Present(f(g.Front()))
	})
}

// Filter returns a Generator yielding only the elements of g for which pred
// holds. If pred is nil all elements pass.
func Filter[T any](g *Generator[T], pred func(T) bool) *Generator[T] {
	first := true
	return New(func() optional.Optional[T] {
		for {
			if first {
				first = false
			} else {
				g.Advance()
			}
			if g.IsExhausted() {
				return optional.Absent[T]()
			}
			if pred == nil || pred(g.Front()) {
				return optional.Present(g.Front())
			}
		}
	})
}

// Take returns a Generator yielding at most n elements of g. It is the safe
// way to drain a prefix of a possibly-infinite source.
func Take[T any](g *Generator[T], n int) *Generator[T] {
	taken := 0
	return New(func() optional.Optional[T] {
		if taken >= n {
			return optional.Absent[T]()
		}
		if taken > 0 {
			g.Advance()
		}
		taken++
		if g.IsExhausted() {
			return optional.Absent[T]()
		}
		return optional.Present(g.Front())
	})
}

// Concat returns a Generator yielding all elements of each generator in turn.
func Concat[T any](gens ...*Generator[T]) *Generator[T] {
	idx := 0
	first := true
	return New(func() optional.Optional[T] {
		for idx < len(gens) {
			g := gens[idx]
			if !first {
				g.Advance()
			}
			first = false
			if g.IsExhausted() {
				idx++
				first = true
				continue
			}
			return optional.Present(g.Front())
		}
		return optional.Absent[T]()
	})
}

// Collect drains g into a slice. It must only be called on finite generators;
// draining an infinite source is a caller error.
func Collect[T any](g *Generator[T]) []T {
	var out []T
	for ; !g.IsExhausted(); g.Advance() {
		out = append(out, g.Front())
	}
	return out
}

// Erase converts a typed Generator into a Generator of any. It backs the
// untyped capability surface consumed by reflection-driven callers.
func Erase[T any](g *Generator[T]) *Generator[any] {
	first := true
	return New(func() optional.Optional[any] {
		if first {
			first = false
		} else {
			g.Advance()
		}
		if g.IsExhausted() {
			return optional.Absent[any]()
		}
		return optional.Present[any](g.Front())
	})
}
