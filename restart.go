// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestartNotFoundError reports invocation of a restart name absent
// from the ambient restart stack. Missing restarts are fatal and
// surface as a panic carrying this typed value.
type RestartNotFoundError struct {
	Name string
}

func (e *RestartNotFoundError) Error() string {
	return fmt.Sprintf("kond: no restart named %q in scope", e.Name)
}

// WithRestart installs a named restart around the protected effect for
// its dynamic extent, with the same structural scoping as [Handle]:
// the frame is prepended on the way in and discarded on the way out.
func WithRestart[V any](name string, action RestartFunc, protected Effect[Scope, V]) Effect[Scope, V] {
	r := Restart{ID: uuid.New(), Name: name, Action: action}
	return ContraMap(
		func(outer Scope) Scope { return outer.withRestart(r) },
		func(outer Scope, _ Scope) Scope { return outer },
		protected,
	)
}

// InvokeRestart transfers control to the innermost restart with the
// given name. The restart's action receives value and its resolution
// becomes the invocation's result. This is a dynamic lookup of an
// independently registered computation, not a captured-continuation
// resume.
//
// Panics with *RestartNotFoundError when no such restart is in scope.
func InvokeRestart(name string, value any) Effect[Scope, any] {
	return Suspended(func(sc Scope) Effect[Scope, any] {
		r, ok := sc.findRestart(name)
		if !ok {
			sc.tracer().Error("restart not found", zap.String("name", name))
			panic(&RestartNotFoundError{Name: name})
		}
		sc.tracer().Debug("invoking restart",
			zap.String("name", name),
			zap.String("restart_id", r.ID.String()),
		)
		return r.Action(value)
	})
}
