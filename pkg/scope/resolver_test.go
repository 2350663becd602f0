package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_Found(t *testing.T) {
	t.Parallel()

	st := NewStack(map[string]any{"name": "Alice"})
	res, err := Resolve(st, "name", "", false)
	require.NoError(t, err)
	require.True(t, res.Resolved)
	require.Equal(t, "Alice", res.Value)
}

func TestResolve_FallbackWins(t *testing.T) {
	t.Parallel()

	res, err := Resolve(NewStack(nil), "name", "there", true)
	require.NoError(t, err, "a fallback satisfies even a required variable")
	require.True(t, res.Resolved)
	require.Equal(t, "there", res.Value)
}

func TestResolve_RequiredMissing(t *testing.T) {
	t.Parallel()

	_, err := Resolve(NewStack(nil), "name", "", true)
	require.ErrorIs(t, err, ErrMissingVariable)
	require.Contains(t, err.Error(), `"name"`)
}

func TestResolve_OptionalMissing(t *testing.T) {
	t.Parallel()

	res, err := Resolve(NewStack(nil), "name", "", false)
	require.NoError(t, err)
	require.False(t, res.Resolved)
	require.Nil(t, res.Value)
}

func TestPlaceholder_Format(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{{name}}", Placeholder("name", ""))
	require.Equal(t, "{{name,fallback=x}}", Placeholder("name", "x"))
}

func TestExpand_RoundTrip(t *testing.T) {
	t.Parallel()

	s := "Hello " + Placeholder("name", "there") + ", order " + Placeholder("orderId", "")

	got := Expand(s, NewStack(map[string]any{"name": "Alice", "orderId": 42}))
	require.Equal(t, "Hello Alice, order 42", got)

	// Fallback applies when the variable is missing.
	got = Expand(s, NewStack(map[string]any{"orderId": 42}))
	require.Equal(t, "Hello there, order 42", got)

	// Unresolvable references stay verbatim.
	got = Expand(s, NewStack(nil))
	require.Equal(t, "Hello there, order {{orderId}}", got)
}

func TestExpand_MalformedBraces(t *testing.T) {
	t.Parallel()

	st := NewStack(map[string]any{"a": 1})
	require.Equal(t, "no placeholders", Expand("no placeholders", st))
	require.Equal(t, "open {{a", Expand("open {{a", st))
	require.Equal(t, "{{}}", Expand("{{}}", st))
}
