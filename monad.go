// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Monad operations for effects.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept because they state intent
// more directly than the Bind expansions they are equivalent to.
// All of them are closed-form specializations of [Adapt].

// identity is the identity context map used by same-context operators.
// A named generic function yields one static function value per type
// instantiation; an anonymous closure would allocate per call.
func identity[S any](s S) S { return s }

// Pure lifts a value into a resolved effect with an empty final state.
func Pure[S, V any](v V) Effect[S, V] {
	var empty S
	return Resolved(empty, v)
}

// Map applies a pure function to the result of an effect.
// The context requirement and the final state pass through untouched.
func Map[S, A, B any](m Effect[S, A], f func(A) B) Effect[S, B] {
	return Adapt(m, identity[S], func(_ S, state S, a A) Effect[S, B] {
		return Resolved(state, f(a))
	})
}

// Bind sequences two effects over the same context type (monadic bind).
// It runs m, then passes the result to f to get the next effect. The
// second effect receives the same ambient context as the first; its
// final state is the authoritative one.
func Bind[S, A, B any](m Effect[S, A], f func(A) Effect[S, B]) Effect[S, B] {
	return Adapt(m, identity[S], func(_ S, _ S, a A) Effect[S, B] {
		return f(a)
	})
}

// Then sequences two effects, discarding the first result.
// Equivalent to Bind(m, func(_) Effect { return n }).
func Then[S, A, B any](m Effect[S, A], n Effect[S, B]) Effect[S, B] {
	return Adapt(m, identity[S], func(_ S, _ S, _ A) Effect[S, B] {
		return n
	})
}
