package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hi", "hi"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"json number", float64(42), "42"},
		{"fraction", 19.99, "19.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	require.False(t, Truthy(nil))
	require.False(t, Truthy(false))
	require.False(t, Truthy(""))
	require.False(t, Truthy(0))
	require.False(t, Truthy(float64(0)))

	require.True(t, Truthy(true))
	require.True(t, Truthy("no"))
	require.True(t, Truthy(1))
	require.True(t, Truthy([]any{}))
	require.True(t, Truthy(map[string]any{}))
}

func TestSequence(t *testing.T) {
	t.Parallel()

	items, ok := Sequence([]any{1, "b"})
	require.True(t, ok)
	require.Equal(t, []any{1, "b"}, items)

	items, ok = Sequence([]string{"a", "b"})
	require.True(t, ok)
	require.Equal(t, []any{"a", "b"}, items)

	items, ok = Sequence([]map[string]any{{"k": 1}})
	require.True(t, ok)
	require.Len(t, items, 1)

	items, ok = Sequence([]int{3, 2, 1})
	require.True(t, ok, "typed slices coerce through reflection")
	require.Equal(t, []any{3, 2, 1}, items)

	_, ok = Sequence("not a sequence")
	require.False(t, ok, "strings are not repeat targets")
	_, ok = Sequence(map[string]any{"k": 1})
	require.False(t, ok)
	_, ok = Sequence(nil)
	require.False(t, ok)
	_, ok = Sequence(42)
	require.False(t, ok)
}
