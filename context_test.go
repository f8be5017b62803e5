// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kond

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideConstantInjection(t *testing.T) {
	e := Suspended(func(ctx int) Effect[int, int] {
		return Resolved(ctx, ctx*2)
	})
	require.Equal(t, 42, Run(Provide[struct{}](21, e)))
}

// Run(Provide(s, Pure(v))) == v for arbitrary injected contexts.
func TestProvidePureLaw(t *testing.T) {
	require.Equal(t, "v", Run(Provide[struct{}]("any context", Pure[string]("v"))))
	require.Equal(t, 5, Run(Provide[struct{}](99, Pure[int](5))))
}

func TestContraMapProjectsAndMergesBack(t *testing.T) {
	type outer struct {
		n    int
		tag  string
		seen int
	}
	inner := Suspended(func(n int) Effect[int, int] {
		return Resolved(n+1, n*10)
	})
	e := ContraMap(
		func(o outer) int { return o.n },
		func(o outer, final int) outer { o.seen = final; return o },
		inner,
	)
	// Observe the merged state through Adapt's continuation.
	var merged outer
	probe := Adapt(e,
		func(o outer) outer { return o },
		func(o outer, state outer, v int) Effect[outer, int] {
			merged = state
			return Resolved(o, v)
		},
	)
	got := Run(Provide[struct{}](outer{n: 4, tag: "t"}, probe))
	require.Equal(t, 40, got)
	assert.Equal(t, 5, merged.seen)
	assert.Equal(t, "t", merged.tag)
}

func TestBindCrossPairContext(t *testing.T) {
	m := Suspended(func(n int) Effect[int, int] {
		return Resolved(n, n+1)
	})
	f := func(a int) Effect[string, string] {
		return Suspended(func(s string) Effect[string, string] {
			return Resolved(s, fmt.Sprintf("%s:%d", s, a))
		})
	}
	combined := BindCross(m, f)
	ctx := Pair[int, string]{Fst: 41, Snd: "ctx"}
	require.Equal(t, "ctx:42", Run(Provide[struct{}](ctx, combined)))
}

func TestLiftExtractsAndRestoresField(t *testing.T) {
	inner := Suspended(func(n int) Effect[int, int] {
		return Resolved(n+1, n*10)
	})
	e := Lift("counter", inner)

	var final Fields
	probe := Adapt(e,
		func(f Fields) Fields { return f },
		func(o Fields, state Fields, v int) Effect[Fields, int] {
			final = state
			return Resolved(o, v)
		},
	)
	fields := Fields{"counter": 4, "other": "untouched"}
	got := Run(Provide[struct{}](fields, probe))
	require.Equal(t, 40, got)
	assert.Equal(t, 5, final["counter"])
	assert.Equal(t, "untouched", final["other"])
	// The source composite is never mutated in place.
	assert.Equal(t, 4, fields["counter"])
}

func TestLiftMissingFieldIsFatal(t *testing.T) {
	e := Lift("absent", Suspended(func(n int) Effect[int, int] {
		return Resolved(n, n)
	}))
	defer func() {
		r := recover()
		require.NotNil(t, r)
		accessErr, ok := r.(*ContextAccessError)
		require.True(t, ok, "want *ContextAccessError, got %T", r)
		assert.Equal(t, "absent", accessErr.Field)
	}()
	Run(e) // zero Fields lacks the field
}

func TestLiftWrongTypeIsFatal(t *testing.T) {
	e := Lift("n", Suspended(func(n int) Effect[int, int] {
		return Resolved(n, n)
	}))
	defer func() {
		_, ok := recover().(*ContextAccessError)
		require.True(t, ok)
	}()
	Run(Provide[struct{}](Fields{"n": "not an int"}, e))
}
