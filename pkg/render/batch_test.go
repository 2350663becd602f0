package render

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblock/pkg/scope"
)

func TestRenderAll_IndependentPayloads(t *testing.T) {
	t.Parallel()

	tree := doc(para(variable("name", nil)))

	payloads := make([]map[string]any, 20)
	for i := range payloads {
		payloads[i] = map[string]any{"name": fmt.Sprintf("user-%d", i)}
	}

	results, err := NewEngine(nil).RenderAll(context.Background(), tree, payloads, Options{}, 4)
	require.NoError(t, err)
	require.Len(t, results, len(payloads))

	for i, res := range results {
		require.Contains(t, res.HTML, fmt.Sprintf(">user-%d</p>", i),
			"result order must match payload order with no cross-talk")
	}
}

func TestRenderAll_FirstErrorWins(t *testing.T) {
	t.Parallel()

	tree := doc(para(variable("name", map[string]any{"required": true})))

	payloads := []map[string]any{
		{"name": "ok"},
		{}, // missing required variable
	}

	_, err := NewEngine(nil).RenderAll(context.Background(), tree, payloads, Options{}, 1)
	require.ErrorIs(t, err, scope.ErrMissingVariable)
	require.Contains(t, err.Error(), "payload 1")
}

func TestRenderAll_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree := doc(para(txt("hi")))
	_, err := NewEngine(nil).RenderAll(ctx, tree, []map[string]any{{}, {}}, Options{}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderAll_Empty(t *testing.T) {
	t.Parallel()

	results, err := NewEngine(nil).RenderAll(context.Background(), doc(para(txt("hi"))), nil, Options{}, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}
