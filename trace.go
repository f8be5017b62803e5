// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import "go.uber.org/zap"

// nopTracer backs every scope without an explicit tracer, including
// the zero scope [Run] supplies as the empty context. Signal dispatch
// must stay silent and allocation-free in that case.
var nopTracer = zap.NewNop()

// tracer returns the scope's tracer, falling back to the nop logger.
func (s Scope) tracer() *zap.Logger {
	if s.Tracer == nil {
		return nopTracer
	}
	return s.Tracer
}
