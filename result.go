// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Result convenience layer: a deliberate narrowing of the general
// condition system in which "error"-typed conditions are always
// terminal for the protected effect and outcomes land in a
// success-or-error record.

// Result is the outcome record produced by [Catch]: OK with a Value,
// or not OK with the terminating error condition.
type Result struct {
	OK    bool
	Value any
	Err   *Condition
}

// thrown is the marker the Catch handler resumes a signal site with.
// Surfacing as the protected effect's final value, it marks the error
// terminal.
type thrown struct {
	cond Condition
}

// Throw signals an "error"-typed condition intended for the nearest
// [Catch]. Identical to [Error]; the terminal treatment comes from the
// Catch handler, not from the signal itself.
func Throw(message string, details map[string]any) Effect[Scope, any] {
	return Error(message, details)
}

// Catch runs the protected effect treating "error"-typed conditions as
// terminal. A caught error produces Result{OK: false, Err: &cond};
// normal completion produces Result{OK: true, Value: v}.
//
// The mechanism stays within the condition protocol: the installed
// handler resumes the signal site with a private marker value, and
// Catch recognizes the marker when it surfaces as the protected
// effect's result. There is still no stack unwinding: an effect that
// signals an error and then keeps computing with the resumption value
// computes with the marker.
func Catch(protected Effect[Scope, any]) Effect[Scope, Result] {
	guarded := Handle(TypeError,
		func(c Condition) Effect[Scope, any] {
			return Pure[Scope, any](thrown{cond: c})
		},
		protected,
	)
	return Map(guarded, func(v any) Result {
		if t, ok := v.(thrown); ok {
			cond := t.cond
			return Result{Err: &cond}
		}
		return Result{OK: true, Value: v}
	})
}
