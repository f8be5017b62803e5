// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

// Resource safety primitives for exception-safe resource management.
// Built on [Catch], so "failure" here means an "error"-typed condition
// signaled inside the bracketed body.

// Bracket provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where
// release runs exactly once whether use completes or signals an error.
//
// The bracketed outcome is returned as a [Result]; a failing use does
// not prevent release and the error condition propagates in the
// result.
func Bracket(
	acquire Effect[Scope, any],
	release func(any) Effect[Scope, any],
	use func(any) Effect[Scope, any],
) Effect[Scope, Result] {
	return Bind(acquire, func(resource any) Effect[Scope, Result] {
		return Bind(Catch(use(resource)), func(outcome Result) Effect[Scope, Result] {
			return Then(release(resource), Pure[Scope](outcome))
		})
	})
}

// OnError runs cleanup only if the body signals an "error"-typed
// condition, then re-signals it. Successful bodies skip cleanup.
func OnError(
	body Effect[Scope, any],
	cleanup func(Condition) Effect[Scope, any],
) Effect[Scope, any] {
	return Bind(Catch(body), func(outcome Result) Effect[Scope, any] {
		if outcome.OK {
			return Pure[Scope](outcome.Value)
		}
		return Then(cleanup(*outcome.Err), Signal(*outcome.Err))
	})
}
