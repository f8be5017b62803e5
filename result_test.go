// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatchSuccess(t *testing.T) {
	outcome := Run(Catch(Pure[Scope, any](7)))
	require.True(t, outcome.OK)
	require.Equal(t, 7, outcome.Value)
	require.Nil(t, outcome.Err)
}

func TestCatchThrow(t *testing.T) {
	outcome := Run(Catch(Throw("boom", map[string]any{"code": 3})))
	require.False(t, outcome.OK)
	require.NotNil(t, outcome.Err)
	assert.Equal(t, TypeError, outcome.Err.Type)
	assert.Equal(t, "boom", outcome.Err.Message)
	assert.Equal(t, 3, outcome.Err.Data["code"])
}

// The error marker rides the resumption value, so a thrown error
// propagates through value-passing continuations to the Catch.
func TestCatchThrowMidChain(t *testing.T) {
	e := Bind(Throw("early", nil), func(v any) Effect[Scope, any] {
		return Pure[Scope, any](v)
	})
	outcome := Run(Catch(e))
	require.False(t, outcome.OK)
	assert.Equal(t, "early", outcome.Err.Message)
}

// Catch narrows only "error"-typed conditions; other condition types
// keep their general resumable behavior inside a Catch.
func TestCatchLeavesOtherConditionsAlone(t *testing.T) {
	e := Bind(Signal(NewCondition("note", "", nil)), func(v any) Effect[Scope, any] {
		require.Equal(t, Unit{}, v)
		return Pure[Scope, any]("after note")
	})
	outcome := Run(Catch(e))
	require.True(t, outcome.OK)
	require.Equal(t, "after note", outcome.Value)
}

// The innermost Catch wins, and an outer Catch still sees success from
// an inner one that already consumed the error.
func TestCatchNesting(t *testing.T) {
	inner := Catch(Throw("inner fault", nil))
	outer := Run(Catch(Map(inner, func(r Result) any { return r })))
	require.True(t, outer.OK)
	innerOutcome, ok := outer.Value.(Result)
	require.True(t, ok)
	require.False(t, innerOutcome.OK)
	assert.Equal(t, "inner fault", innerOutcome.Err.Message)
}

func TestBracketReleasesOnSuccess(t *testing.T) {
	releases := 0
	outcome := Run(Bracket(
		Pure[Scope, any]("res"),
		func(r any) Effect[Scope, any] {
			releases++
			return Pure[Scope, any](Unit{})
		},
		func(r any) Effect[Scope, any] {
			return Pure[Scope, any](r.(string) + ":used")
		},
	))
	require.True(t, outcome.OK)
	require.Equal(t, "res:used", outcome.Value)
	require.Equal(t, 1, releases)
}

func TestBracketReleasesExactlyOnceOnFailure(t *testing.T) {
	releases := 0
	outcome := Run(Bracket(
		Pure[Scope, any]("res"),
		func(any) Effect[Scope, any] {
			releases++
			return Pure[Scope, any](Unit{})
		},
		func(any) Effect[Scope, any] {
			return Throw("use failed", nil)
		},
	))
	require.False(t, outcome.OK)
	assert.Equal(t, "use failed", outcome.Err.Message)
	require.Equal(t, 1, releases)
}

func TestOnErrorSkipsCleanupOnSuccess(t *testing.T) {
	cleanups := 0
	got := Run(OnError(
		Pure[Scope, any]("fine"),
		func(Condition) Effect[Scope, any] {
			cleanups++
			return Pure[Scope, any](Unit{})
		},
	))
	require.Equal(t, "fine", got)
	require.Equal(t, 0, cleanups)
}

func TestOnErrorCleansUpAndResignals(t *testing.T) {
	cleanups := 0
	e := Catch(OnError(
		Throw("fault", nil),
		func(c Condition) Effect[Scope, any] {
			cleanups++
			return Pure[Scope, any](Unit{})
		},
	))
	outcome := Run(e)
	require.Equal(t, 1, cleanups)
	require.False(t, outcome.OK)
	assert.Equal(t, "fault", outcome.Err.Message)
}

func TestEitherAccessors(t *testing.T) {
	r := Right[string](42)
	require.True(t, r.IsRight())
	require.False(t, r.IsLeft())
	v, ok := r.GetRight()
	require.True(t, ok)
	require.Equal(t, 42, v)

	l := Left[string, int]("nope")
	e, ok := l.GetLeft()
	require.True(t, ok)
	require.Equal(t, "nope", e)
	_, ok = l.GetRight()
	require.False(t, ok)
}

func TestEitherCombinators(t *testing.T) {
	doubled := MapEither(Right[string](21), func(x int) int { return x * 2 })
	v, _ := doubled.GetRight()
	require.Equal(t, 42, v)

	chained := FlatMapEither(Right[string](5), func(x int) Either[string, int] {
		return Left[string, int]("lost")
	})
	require.True(t, chained.IsLeft())

	relabeled := MapLeftEither(chained, func(s string) string { return s + "!" })
	msg, _ := relabeled.GetLeft()
	require.Equal(t, "lost!", msg)

	require.Equal(t, "right:5",
		MatchEither(Right[string](5),
			func(string) string { return "left" },
			func(x int) string { return "right:5" },
		))
}
