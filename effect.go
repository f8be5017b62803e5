// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Effect represents a possibly-suspended computation.
// Effect[S, V] either holds a final value of type V together with a
// final context state of type S, or awaits a context of type S before
// it can take its next step.
//
// The two cases form a sum type: a nil ability marks the Resolved case,
// a non-nil ability marks the Suspended case. Effect values are plain
// data: constructed fresh per use, never aliased, never mutated.
type Effect[S, V any] struct {
	state   S
	value   V
	ability func(S) Effect[S, V]
}

// Resolved constructs a terminal effect carrying a final state and value.
func Resolved[S, V any](state S, value V) Effect[S, V] {
	return Effect[S, V]{state: state, value: value}
}

// Suspended constructs an effect awaiting context.
// The ability receives the ambient context and yields the next effect,
// which may itself be suspended again.
func Suspended[S, V any](ability func(S) Effect[S, V]) Effect[S, V] {
	return Effect[S, V]{ability: ability}
}

// IsResolved reports whether the effect has reached its terminal case.
func (e Effect[S, V]) IsResolved() bool {
	return e.ability == nil
}

// Run drives an effect to completion and returns its value.
//
// Each suspension is supplied the zero value of S as the empty context.
// An effect that still needs real context fields will therefore fail
// inside its ability when driven here; eliminate context requirements
// first with Provide, ContraMap, or Lift.
//
// The loop is iterative: one ability call per suspension step, constant
// stack regardless of chain length.
func Run[S, V any](e Effect[S, V]) V {
	var empty S
	for e.ability != nil {
		e = e.ability(empty)
	}
	return e.value
}

// Adapt is the universal transformation combinator. Every other
// operator in the package is a specialization of it.
//
// Adapt is simultaneously a contravariant context transform (contextMap
// narrows the outer context O to the inner context I the wrapped effect
// needs) and a covariant continuation transform (k receives the outer
// context, the inner effect's final state, and its value, and decides
// what the combined effect does next).
//
// The returned effect is suspended on O. Driving it performs exactly
// one step of the wrapped effect and re-wraps the remainder, so the
// evaluation loop in [Run] stays the trampoline; contextMap is
// reapplied against the same outer context at every suspension step,
// which is what makes multi-step context threading compose.
func Adapt[O, I, V, U any](
	e Effect[I, V],
	contextMap func(O) I,
	k func(outer O, state I, value V) Effect[O, U],
) Effect[O, U] {
	return Effect[O, U]{ability: func(outer O) Effect[O, U] {
		if e.ability == nil {
			return k(outer, e.state, e.value)
		}
		return Adapt(e.ability(contextMap(outer)), contextMap, k)
	}}
}
