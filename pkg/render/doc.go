// Package render turns a block-document email template plus a runtime
// context — payload variables, an optional theme override, and options —
// into production email HTML.
//
// The pipeline is pure and deterministic: one Render call reads the
// (immutable) tree, builds its own scope stack and merged theme, and
// produces a Result without touching shared state. Many renders of one
// tree may run concurrently; RenderAll does exactly that for campaign
// sends.
//
// # Pipeline
//
// Rendering is a pre-order, depth-first traversal:
//
//   - Conditional visibility: a node with a showIfKey attribute is dropped
//     with its whole subtree when the key is falsy or unresolved in the
//     current scope. Pruning happens before any variable inside the
//     subtree is resolved.
//   - Repeat expansion: a repeat node renders its children once per item
//     of the sequence named by its "each" attribute. Each iteration pushes
//     one scope frame, so item fields shadow identically-named globals;
//     nested repeats stack frames. A missing or non-sequence target emits
//     nothing and logs a warning.
//   - Dispatch: every other node renders its children first, then its
//     registered NodeFunc assembles the fragment. A node type without a
//     registration fails the whole render — a silently dropped block is
//     worse than a loud error for production email.
//
// # Usage
//
//	doc, _ := document.Parse(raw)
//	res, err := render.Render(doc, render.Options{
//		Payload:          map[string]any{"name": "Alice"},
//		ExtractPreheader: true,
//	})
//	if err != nil {
//		// handle unsupported node types / missing required variables
//	}
//	_ = res.HTML
//	_ = res.Preheader
//
// Rendering with Mode set to ModeTemplate substitutes nothing and emits
// every variable reference as {{name,fallback=value}}, which round-trips
// through scope.Expand.
package render
