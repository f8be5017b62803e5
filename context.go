// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import "fmt"

// Context algebra: operators that transform the context side of an
// effect. Where Map rewrites what an effect produces, these rewrite
// what an effect needs.

// ContraMap transforms the context requirement of an effect.
// The getter projects the inner context out of the outer one; the
// setter merges the inner effect's final state back into the outer
// context on resolution. The value passes through untouched.
func ContraMap[O, I, V any](
	getter func(O) I,
	setter func(O, I) O,
	e Effect[I, V],
) Effect[O, V] {
	return Adapt(e, getter, func(outer O, state I, v V) Effect[O, V] {
		return Resolved(setter(outer, state), v)
	})
}

// Provide eliminates a context requirement by constant injection.
// The resulting effect accepts any outer context and ignores it.
func Provide[O, I, V any](value I, e Effect[I, V]) Effect[O, V] {
	return ContraMap(
		func(O) I { return value },
		func(outer O, _ I) O { return outer },
		e,
	)
}

// Pair is the two-field tuple used for cross-context binding and for
// pairwise stream combination.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// BindCross sequences two effects over different context types.
// m needs context S and f's effect needs context R; the combined
// effect needs Pair[S, R], projecting Fst while driving m and Snd
// while driving the effect f produces. The output's value and state
// come from the second effect; the pair state records m's final state
// alongside it.
func BindCross[S, R, A, B any](m Effect[S, A], f func(A) Effect[R, B]) Effect[Pair[S, R], B] {
	return Adapt(m,
		func(p Pair[S, R]) S { return p.Fst },
		func(_ Pair[S, R], state S, a A) Effect[Pair[S, R], B] {
			return Adapt(f(a),
				func(p Pair[S, R]) R { return p.Snd },
				func(_ Pair[S, R], second R, b B) Effect[Pair[S, R], B] {
					return Resolved(Pair[S, R]{Fst: state, Snd: second}, b)
				},
			)
		},
	)
}

// Fields is the string-keyed composite context used by [Lift].
// Treated as immutable: every update copies.
type Fields map[string]any

// with returns a copy of f with name bound to v.
func (f Fields) with(name string, v any) Fields {
	next := make(Fields, len(f)+1)
	for k, val := range f {
		next[k] = val
	}
	next[name] = v
	return next
}

// ContextAccessError reports an ability reading a context field the
// supplied context lacks, or one holding a value of the wrong type.
// Malformed context access is a contract violation, so it surfaces as
// a panic carrying this typed value.
type ContextAccessError struct {
	Field string
	Want  string
}

func (e *ContextAccessError) Error() string {
	return fmt.Sprintf("kond: context field %q missing or not of type %s", e.Field, e.Want)
}

// Lift narrows an effect's context requirement to one named field of a
// [Fields] composite. The field's current value drives the inner
// effect; the inner effect's final state is written back under the
// same name. Lift is the named-field specialization of [ContraMap].
//
// Panics with *ContextAccessError when the field is absent or holds a
// value that is not an I.
func Lift[I, V any](name string, e Effect[I, V]) Effect[Fields, V] {
	return ContraMap(
		func(outer Fields) I {
			raw, ok := outer[name]
			if !ok {
				panic(&ContextAccessError{Field: name, Want: fmt.Sprintf("%T", *new(I))})
			}
			inner, ok := raw.(I)
			if !ok {
				panic(&ContextAccessError{Field: name, Want: fmt.Sprintf("%T", *new(I))})
			}
			return inner
		},
		func(outer Fields, state I) Fields {
			return outer.with(name, state)
		},
		e,
	)
}
