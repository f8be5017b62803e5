// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Non-deterministic choice over solution streams, in the miniKanren
// style: MZero is failure, MPlus the fair disjunction, and the search
// combinators below bound or commit the stream without ever forcing
// more of it than they need.

// NoSolution is the explicit no-solution marker reported by [Observe]
// on an empty solution stream.
type NoSolution struct{}

// MZero is the failed computation: no solutions.
func MZero[S, V any]() Stream[S, V] {
	return Done[S, V]()
}

// MPlus is the fair disjunction of two solution streams.
// Equivalent to [Interleave]; named for its role as the monoid
// operation of the choice layer.
func MPlus[S, V any](a, b Stream[S, V]) Stream[S, V] {
	return Interleave(a, b)
}

// OrElse peeks one step of a: an empty a yields b entirely, otherwise
// the remainder of a is fairly interleaved with b. Unlike [Ifte] the
// peeked solution stays in the combined stream rather than being
// passed forward.
func OrElse[S, V any](a, b Stream[S, V]) Stream[S, V] {
	return Bind(a, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok {
			return b
		}
		return More(v, func() Stream[S, V] {
			return Interleave(b, st.Tail())
		})
	})
}

// Choice folds [MPlus] over the alternatives, left to right. An empty
// slice is [MZero].
func Choice[S, V any](alternatives []Stream[S, V]) Stream[S, V] {
	acc := MZero[S, V]()
	for _, alt := range alternatives {
		acc = MPlus(acc, alt)
	}
	return acc
}

// Guard prunes a search branch: a single unit solution when cond
// holds, no solutions otherwise.
func Guard[S any](cond bool) Stream[S, Unit] {
	if !cond {
		return MZero[S, Unit]()
	}
	return More[S](Unit{}, nil)
}

// Observe commits to the first solution of the stream, or reports
// Left[NoSolution] when the stream is empty. Solutions past the first
// are never forced.
func Observe[S, V any](s Stream[S, V]) Effect[S, Either[NoSolution, V]] {
	return Bind(s, func(st Step[S, V]) Effect[S, Either[NoSolution, V]] {
		v, ok := st.Get()
		if !ok {
			return Pure[S](Left[NoSolution, V](NoSolution{}))
		}
		return Pure[S](Right[NoSolution](v))
	})
}

// ObserveAll materializes the full solution stream, which is assumed
// finite.
func ObserveAll[S, V any](s Stream[S, V]) Effect[S, []V] {
	return ToSlice(s)
}

// Ifte is the soft-cut conditional: when cond has at least one
// solution, commit to its first value and continue with then; with no
// solution, continue with els. The condition stream is forced one step
// and never re-run, which is what distinguishes Ifte from [OrElse].
func Ifte[S, A, B any](cond Stream[S, A], then func(A) Stream[S, B], els Stream[S, B]) Stream[S, B] {
	return Bind(cond, func(st Step[S, A]) Stream[S, B] {
		v, ok := st.Get()
		if !ok {
			return els
		}
		return then(v)
	})
}

// Once limits the solution stream to at most one More step while
// preserving the stream framing.
func Once[S, V any](s Stream[S, V]) Stream[S, V] {
	return Bind(s, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok {
			return Done[S, V]()
		}
		return More[S](v, nil)
	})
}
