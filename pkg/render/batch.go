package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

// RenderAll renders one immutable tree against many payloads, e.g. a
// campaign send. Renders are fully independent: each invocation builds its
// own scope stack and merged theme, so they run in parallel with zero
// shared mutable state. concurrency caps the number of in-flight renders;
// zero or negative means unbounded.
//
// Results are returned in payload order. The first failing render cancels
// the rest through ctx; a wall-clock budget against pathological payloads
// belongs in the caller's context deadline.
func (e *Engine) RenderAll(ctx context.Context, tree *document.Node, payloads []map[string]any, opts Options, concurrency int) ([]*Result, error) {
	results := make([]*Result, len(payloads))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, payload := range payloads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := opts
			o.Payload = payload
			res, err := e.Render(tree, o)
			if err != nil {
				return fmt.Errorf("payload %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
