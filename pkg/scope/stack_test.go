package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_LookupInnermostFirst(t *testing.T) {
	t.Parallel()

	st := NewStack(map[string]any{"x": 1, "only": "global"})
	inner := st.Push(map[string]any{"x": 2})

	v, ok := inner.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 2, v)

	// Outer frames stay reachable through the new stack.
	v, ok = inner.Lookup("only")
	require.True(t, ok)
	require.Equal(t, "global", v)

	// The original stack is untouched by the push.
	v, ok = st.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestStack_LookupMissing(t *testing.T) {
	t.Parallel()

	_, ok := NewStack(nil).Lookup("anything")
	require.False(t, ok)

	_, ok = NewStack(map[string]any{"a": 1}).Lookup("b")
	require.False(t, ok)
}

func TestStack_PushDoesNotAliasSiblings(t *testing.T) {
	t.Parallel()

	base := NewStack(map[string]any{"g": true})
	first := base.Push(map[string]any{"n": 1})
	second := base.Push(map[string]any{"n": 2})

	v, _ := first.Lookup("n")
	require.Equal(t, 1, v, "sibling push must not overwrite an earlier stack's frame")
	v, _ = second.Lookup("n")
	require.Equal(t, 2, v)
}

func TestStack_NestedShadowing(t *testing.T) {
	t.Parallel()

	st := NewStack(map[string]any{"x": "global"}).
		Push(map[string]any{"x": "outer-loop"}).
		Push(map[string]any{"x": "inner-loop"})

	v, _ := st.Lookup("x")
	require.Equal(t, "inner-loop", v)
}
