// Package mailblock is a toolkit for authoring portable block-document
// email templates and rendering them to production email HTML.
//
// A template is a JSON tree of typed nodes (pkg/document), authored
// programmatically (pkg/builder), imported from markdown (pkg/markdown),
// or produced by an external editor. Rendering (pkg/render) interpolates
// payload variables with scoped shadowing, evaluates conditional
// visibility, expands repeat nodes, and applies a themeable style
// configuration (pkg/theme). Delivery through providers lives in
// pkg/mailer.
//
// The root package re-exports the common types and entry points so simple
// uses need a single import:
//
//	doc, err := mailblock.Parse(raw)
//	if err != nil {
//		return err
//	}
//	res, err := mailblock.Render(doc, mailblock.Options{
//		Payload: map[string]any{"name": "Alice"},
//	})
package mailblock
