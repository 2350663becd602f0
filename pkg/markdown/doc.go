// Package markdown imports markdown copy into the block-document format,
// giving existing email text a path into the same render pipeline as
// editor-built templates.
//
// Convert parses with goldmark and maps the AST onto document nodes:
// headings (clamped to levels 1–3), paragraphs, emphasis and links as
// inline marks, lists, thematic breaks, images, code spans and blocks.
// Raw HTML blocks become rawHtml nodes and are sanitized at render time.
//
//	doc, err := markdown.Convert([]byte("# Hello\n\nWelcome, friend."))
//	if err != nil {
//		return err
//	}
//	res, err := render.Render(doc, render.Options{})
//
// Variable placeholders in running text are lifted to variable nodes:
// "Hello {{name,fallback=there}}" converts to a text leaf plus a variable
// node, so imported copy participates in payload substitution like any
// editor-built template. Malformed references stay literal text.
package markdown
