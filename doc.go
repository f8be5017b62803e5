// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kond provides an embeddable algebraic-effects runtime:
// explicit, composable context dependency; dynamically-scoped,
// resumable condition handling; and lazy non-deterministic search over
// possibly infinite solution spaces.
//
// # Effect Kernel
//
// The core type [Effect] is a two-case sum: Resolved carries a final
// state and value, Suspended awaits a context before taking its next
// step. Everything else in the package is a closed-form composition of
// the single universal combinator [Adapt].
//
//   - [Resolved], [Suspended]: Constructors
//   - [Run]: Iterative evaluation loop (the trampoline)
//   - [Adapt]: Contravariant context transform + covariant continuation transform
//
// # Context Algebra
//
// Same-context sequencing and context reshaping, all derived from
// [Adapt]:
//
//   - [Pure], [Map], [Bind], [Then]: Monad operations
//   - [ContraMap]: Context-only transform with state write-back
//   - [BindCross]: Cross-context bind over [Pair] contexts
//   - [Provide]: Constant context injection
//   - [Lift]: Named-field projection over the [Fields] composite
//
// # Condition System
//
// Signal/handle/restart in the Common Lisp style, as a request/response
// protocol rather than stack unwinding. Handler and restart stacks are
// immutable lists inside [Scope], threaded through context and rebuilt
// structurally per dynamic extent.
//
//   - [Signal], [Handle]: Raise and respond to tagged conditions
//   - [WithRestart], [InvokeRestart]: Named recovery actions
//   - [Error], [Warn], [Cerror]: Convenience signalers
//   - [Catch], [Throw]: Result narrowing; "error" conditions become terminal
//   - [Bracket], [OnError]: Exception-safe resource management
//
// An unhandled condition resumes with [Unit]; it is not a failure.
// A missing restart is fatal and panics with *[RestartNotFoundError].
//
// # Streams and Choice
//
// [Stream] is an effect producing a [Step] (Done or More with a
// deferred tail). [Interleave] alternates sources after every produced
// element, so no infinite source starves the other; the choice layer
// builds complete non-deterministic search on that fairness:
//
//   - [Done], [More], [FromSlice]: Construction
//   - [MapStream], [Filter], [Take], [TakeWhile], [Fold], [ToSlice],
//     [ForEach], [Concat], [Interleave], [Flatten], [FlatMap], [Zip]
//   - [MZero], [MPlus], [OrElse], [Choice], [Guard], [Observe],
//     [ObserveAll], [Ifte], [Once]
//
// # Execution Model
//
// Evaluation is single-threaded and synchronous. Suspension denotes a
// value awaiting context, not an OS-level block; there is no scheduler
// and no cancellation primitive; bound infinite searches with [Take]
// or [Once]. No combinator mutates a context in place, so logically
// forked search branches share nothing.
//
// # Example
//
//	doubled := kond.WithRestart("double",
//		func(v any) kond.Effect[kond.Scope, any] {
//			return kond.Pure[kond.Scope, any](v.(int) * 2)
//		},
//		kond.Handle("overflow",
//			func(c kond.Condition) kond.Effect[kond.Scope, any] {
//				return kond.InvokeRestart("double", 21)
//			},
//			kond.Signal(kond.NewCondition("overflow", "retrying", nil)),
//		),
//	)
//	result := kond.Run(doubled) // 42
package kond
