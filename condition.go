// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Condition system: dynamically-scoped, resumable condition handling in
// the Common Lisp style, layered on the context algebra. Handlers and
// restarts live in immutable lists inside [Scope]; scoping operators
// rebuild the scope structurally for the dynamic extent of a protected
// effect, so visibility is extent-scoped without any push/pop mutation
// and branches of a non-deterministic search cannot leak frames into
// each other.

// Unit is the resumption value of an unhandled condition and the
// conventional result of effects run purely for their signaling.
type Unit struct{}

// Wildcard is the handler pattern matching every condition type.
const Wildcard = "*"

// Condition is a signaled, tagged event. Type is the dispatch tag;
// Message and Data are payload; Continuable marks conditions signaled
// via [Cerror], which install a "continue" restart.
type Condition struct {
	Type        string
	Message     string
	Data        map[string]any
	Continuable bool
}

// ConditionTypeError reports construction of a condition without a
// type tag. A tagless condition could never match a handler, so this
// fails fast at construction instead.
type ConditionTypeError struct{}

func (*ConditionTypeError) Error() string {
	return "kond: condition constructed without a type tag"
}

// NewCondition constructs a condition with the given type tag and
// payload. Panics with *ConditionTypeError on an empty tag.
func NewCondition(typ string, message string, data map[string]any) Condition {
	if typ == "" {
		panic(&ConditionTypeError{})
	}
	return Condition{Type: typ, Message: message, Data: data}
}

// HandlerFunc is a handler action: it receives the signaled condition
// and yields the effect whose resolution becomes the signal's result.
type HandlerFunc func(Condition) Effect[Scope, any]

// RestartFunc is a restart action: it receives the value passed to
// [InvokeRestart] and yields the effect that becomes the invocation's
// result.
type RestartFunc func(any) Effect[Scope, any]

// Handler is a dynamically-scoped responder bound to a condition tag.
// The ID identifies the installed frame in trace output.
type Handler struct {
	ID      uuid.UUID
	Pattern string
	Action  HandlerFunc
}

// Restart is a dynamically-scoped named recovery action a handler may
// invoke through [InvokeRestart].
type Restart struct {
	ID     uuid.UUID
	Name   string
	Action RestartFunc
}

// Scope is the ambient context threaded through condition-aware
// effects. It is a plain immutable value: State carries program state,
// Handlers and Restarts are the dynamic stacks ordered innermost
// first, and Tracer receives structured events from signal dispatch
// (nil means silent; see trace.go).
type Scope struct {
	State    any
	Handlers []Handler
	Restarts []Restart
	Tracer   *zap.Logger
}

// NewScope returns an empty scope with a nop tracer.
func NewScope() Scope {
	return Scope{Tracer: nopTracer}
}

// WithTracer returns a copy of the scope emitting trace events to l.
func (s Scope) WithTracer(l *zap.Logger) Scope {
	s.Tracer = l
	return s
}

// withHandler returns a copy of the scope with h installed innermost.
func (s Scope) withHandler(h Handler) Scope {
	handlers := make([]Handler, 0, len(s.Handlers)+1)
	handlers = append(handlers, h)
	handlers = append(handlers, s.Handlers...)
	s.Handlers = handlers
	return s
}

// withRestart returns a copy of the scope with r installed innermost.
func (s Scope) withRestart(r Restart) Scope {
	restarts := make([]Restart, 0, len(s.Restarts)+1)
	restarts = append(restarts, r)
	restarts = append(restarts, s.Restarts...)
	s.Restarts = restarts
	return s
}

// findHandler selects the innermost handler matching the tag, either
// exactly or via [Wildcard]. Selection stops at the first match.
func (s Scope) findHandler(tag string) (Handler, bool) {
	for _, h := range s.Handlers {
		if h.Pattern == tag || h.Pattern == Wildcard {
			return h, true
		}
	}
	return Handler{}, false
}

// findRestart selects the innermost restart with the given name.
func (s Scope) findRestart(name string) (Restart, bool) {
	for _, r := range s.Restarts {
		if r.Name == name {
			return r, true
		}
	}
	return Restart{}, false
}

// Handle installs a handler for tag around the protected effect.
//
// The handler is visible for the dynamic extent of protected and
// nowhere else: the getter prepends the frame on the way in and the
// setter discards it on the way out, so the installation is dynamic,
// not lexical, and leaves the outer scope untouched.
//
// Note the handler's own frame stays visible while its action runs; an
// action that signals the same condition type it handles will dispatch
// to itself and can recurse indefinitely. See [Signal].
func Handle[V any](tag string, action HandlerFunc, protected Effect[Scope, V]) Effect[Scope, V] {
	h := Handler{ID: uuid.New(), Pattern: tag, Action: action}
	return ContraMap(
		func(outer Scope) Scope { return outer.withHandler(h) },
		func(outer Scope, _ Scope) Scope { return outer },
		protected,
	)
}

// conditionField renders a condition for trace output.
func conditionField(c Condition) zap.Field {
	return zap.String("condition", fmt.Sprintf("%s: %s", c.Type, c.Message))
}
