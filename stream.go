// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Lazy streams: a possibly infinite sequence modeled as nested
// effect-producing steps. A stream is an effect whose value is one
// [Step]; the tail of a More step is a zero-argument thunk re-deriving
// the next stream effect on demand. Nothing is memoized; each
// traversal recomputes its continuations.

// Step is one observation of a stream: Done, or More carrying a head
// value and a deferred tail.
type Step[S, V any] struct {
	hasValue bool
	head     V
	tail     func() Stream[S, V]
}

// Stream is an effect producing a [Step] in context S.
type Stream[S, V any] = Effect[S, Step[S, V]]

// IsDone reports whether the step ends the stream.
func (s Step[S, V]) IsDone() bool {
	return !s.hasValue
}

// Get returns the step's head value and true, or zero and false for a
// Done step.
func (s Step[S, V]) Get() (V, bool) {
	if !s.hasValue {
		var zero V
		return zero, false
	}
	return s.head, true
}

// Tail forces the step's deferred tail. The tail of a Done step, or of
// a More built with a nil thunk, is the empty stream.
func (s Step[S, V]) Tail() Stream[S, V] {
	if s.tail == nil {
		return Done[S, V]()
	}
	return s.tail()
}

// Done yields the empty stream.
func Done[S, V any]() Stream[S, V] {
	return Pure[S](Step[S, V]{})
}

// More yields a stream producing v and continuing with next. A nil
// next ends the stream after v.
func More[S, V any](v V, next func() Stream[S, V]) Stream[S, V] {
	return Pure[S](Step[S, V]{hasValue: true, head: v, tail: next})
}

// FromSlice unfolds a finite slice into a stream. The stream is pure
// and restartable: traversing it twice yields the elements twice.
func FromSlice[S, V any](items []V) Stream[S, V] {
	if len(items) == 0 {
		return Done[S, V]()
	}
	head, rest := items[0], items[1:]
	return More(head, func() Stream[S, V] {
		return FromSlice[S](rest)
	})
}

// MapStream applies a pure function to every stream element.
func MapStream[S, V, W any](s Stream[S, V], f func(V) W) Stream[S, W] {
	return Bind(s, func(st Step[S, V]) Stream[S, W] {
		v, ok := st.Get()
		if !ok {
			return Done[S, W]()
		}
		return More(f(v), func() Stream[S, W] {
			return MapStream(st.Tail(), f)
		})
	})
}

// Filter keeps the elements satisfying pred. Finding the next match
// may force multiple steps of the source; the lookahead cost is
// proportional to the number of skipped elements.
func Filter[S, V any](s Stream[S, V], pred func(V) bool) Stream[S, V] {
	return Bind(s, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok {
			return Done[S, V]()
		}
		if !pred(v) {
			return Filter(st.Tail(), pred)
		}
		return More(v, func() Stream[S, V] {
			return Filter(st.Tail(), pred)
		})
	})
}

// Take bounds the stream to its first n elements. Elements past the
// cut are never forced.
func Take[S, V any](s Stream[S, V], n int) Stream[S, V] {
	if n <= 0 {
		return Done[S, V]()
	}
	return Bind(s, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok {
			return Done[S, V]()
		}
		return More(v, func() Stream[S, V] {
			if n <= 1 {
				return Done[S, V]()
			}
			return Take(st.Tail(), n-1)
		})
	})
}

// TakeWhile yields elements while pred holds, ending at the first
// element that fails it without forcing anything beyond.
func TakeWhile[S, V any](s Stream[S, V], pred func(V) bool) Stream[S, V] {
	return Bind(s, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok || !pred(v) {
			return Done[S, V]()
		}
		return More(v, func() Stream[S, V] {
			return TakeWhile(st.Tail(), pred)
		})
	})
}

// Fold is the effectful left fold: f yields an effect per element, so
// accumulation can read and write ambient context along the way. The
// source stream is assumed finite.
func Fold[S, V, B any](s Stream[S, V], initial B, f func(B, V) Effect[S, B]) Effect[S, B] {
	return Bind(s, func(st Step[S, V]) Effect[S, B] {
		v, ok := st.Get()
		if !ok {
			return Pure[S](initial)
		}
		return Bind(f(initial, v), func(acc B) Effect[S, B] {
			return Fold(st.Tail(), acc, f)
		})
	})
}

// ToSlice materializes a finite stream into a slice.
func ToSlice[S, V any](s Stream[S, V]) Effect[S, []V] {
	return Fold(s, []V(nil), func(acc []V, v V) Effect[S, []V] {
		return Pure[S](append(acc, v))
	})
}

// ForEach runs an effect for every element of a finite stream.
func ForEach[S, V any](s Stream[S, V], f func(V) Effect[S, Unit]) Effect[S, Unit] {
	return Fold(s, Unit{}, func(_ Unit, v V) Effect[S, Unit] {
		return f(v)
	})
}

// concatLazy appends a deferred stream after a, deriving it only once
// a is exhausted.
func concatLazy[S, V any](a Stream[S, V], b func() Stream[S, V]) Stream[S, V] {
	return Bind(a, func(st Step[S, V]) Stream[S, V] {
		v, ok := st.Get()
		if !ok {
			return b()
		}
		return More(v, func() Stream[S, V] {
			return concatLazy(st.Tail(), b)
		})
	})
}

// Concat yields every element of a, then every element of b. The
// second stream is untouched until the first reaches Done; an
// infinite a starves b entirely; use [Interleave] for fairness.
func Concat[S, V any](a, b Stream[S, V]) Stream[S, V] {
	return concatLazy(a, func() Stream[S, V] { return b })
}

// Interleave combines two streams fairly: after producing one element
// from a the roles swap, so every element of both sources is
// eventually reachable even when one of them is infinite. The choice
// layer depends on this property for complete search.
func Interleave[S, V any](a, b Stream[S, V]) Stream[S, V] {
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

// Flatten concatenates the inner streams of a stream of streams in
// encounter order.
func Flatten[S, V any](ss Stream[S, Stream[S, V]]) Stream[S, V] {
	return Bind(ss, func(st Step[S, Stream[S, V]]) Stream[S, V] {
		inner, ok := st.Get()
		if !ok {
			return Done[S, V]()
		}
		return concatLazy(inner, func() Stream[S, V] {
			return Flatten(st.Tail())
		})
	})
}

// FlatMap maps every element to a stream and concatenates the results
// in encounter order.
func FlatMap[S, V, W any](s Stream[S, V], f func(V) Stream[S, W]) Stream[S, W] {
	return Flatten(MapStream(s, f))
}

// Zip pairs up two streams elementwise, stopping at the shorter one.
func Zip[S, A, B any](a Stream[S, A], b Stream[S, B]) Stream[S, Pair[A, B]] {
	return Bind(a, func(st1 Step[S, A]) Stream[S, Pair[A, B]] {
		x, ok := st1.Get()
		if !ok {
			return Done[S, Pair[A, B]]()
		}
		return Bind(b, func(st2 Step[S, B]) Stream[S, Pair[A, B]] {
			y, ok := st2.Get()
			if !ok {
				return Done[S, Pair[A, B]]()
			}
			return More(Pair[A, B]{Fst: x, Snd: y}, func() Stream[S, Pair[A, B]] {
				return Zip(st1.Tail(), st2.Tail())
			})
		})
	})
}
