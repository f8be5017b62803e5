// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import "go.uber.org/zap"

// Signal raises a condition to the ambient handler stack.
//
// The innermost handler whose pattern matches the condition's type (or
// is [Wildcard]) receives the condition; the resolution of its action
// becomes the signal's result. The handler's effect runs against the
// same ambient scope as the signal itself, handler included, so a
// handler that re-signals its own condition type without excluding its
// frame dispatches back to itself and can recurse indefinitely. That
// is the documented behavior, not a defect to guard against.
//
// With no matching handler the signal is a no-op resumption: it
// resolves to [Unit] with the scope unchanged. An undeclared condition
// is not a failure.
func Signal(c Condition) Effect[Scope, any] {
	if c.Type == "" {
		panic(&ConditionTypeError{})
	}
	return Suspended(func(sc Scope) Effect[Scope, any] {
		h, ok := sc.findHandler(c.Type)
		if !ok {
			sc.tracer().Debug("condition resumed unhandled", conditionField(c))
			return Resolved[Scope, any](sc, Unit{})
		}
		sc.tracer().Debug("dispatching condition",
			conditionField(c),
			zap.String("handler_id", h.ID.String()),
			zap.String("pattern", h.Pattern),
		)
		return h.Action(c)
	})
}

// Error signals an "error"-typed condition. On its own this is not a
// language-level failure: with no handler it resumes with [Unit] like
// any other unhandled condition. It becomes terminal only when a
// surrounding layer makes it so (see [Catch]).
func Error(message string, details map[string]any) Effect[Scope, any] {
	return Signal(Condition{Type: TypeError, Message: message, Data: details})
}

// Warn signals a "warning"-typed condition. An unhandled warning is
// reported through the scope's tracer before resuming with [Unit].
func Warn(message string, details map[string]any) Effect[Scope, any] {
	c := Condition{Type: TypeWarning, Message: message, Data: details}
	return Suspended(func(sc Scope) Effect[Scope, any] {
		if _, ok := sc.findHandler(c.Type); ok {
			return Signal(c)
		}
		sc.tracer().Warn(c.Message, zap.String("type", c.Type), zap.Any("details", c.Data))
		return Resolved[Scope, any](sc, Unit{})
	})
}

// Cerror signals a continuable error: an "error"-typed condition with
// the Continuable mark, wrapped in a "continue" restart that resolves
// to def. A handler that detects the mark can invoke the restart and
// the signal site receives the originally supplied default.
func Cerror(message string, def any, details map[string]any) Effect[Scope, any] {
	c := Condition{Type: TypeError, Message: message, Data: details, Continuable: true}
	return WithRestart(RestartContinue,
		func(any) Effect[Scope, any] { return Pure[Scope, any](def) },
		Signal(c),
	)
}

// Condition type tags and restart names used by the convenience
// signalers.
const (
	TypeError       = "error"
	TypeWarning     = "warning"
	RestartContinue = "continue"
)
