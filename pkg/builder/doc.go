// Package builder is the programmatic authoring surface for block
// documents: fluent constructors that assemble a portable template tree
// without hand-writing JSON.
//
// Constructors accept children and options in one argument list; options
// set node attributes, everything else must be a child node:
//
//	doc := builder.Doc(
//		builder.H1(builder.Text("Your order")),
//		builder.Paragraph(
//			builder.Text("Hi "),
//			builder.Variable("name", builder.Fallback("there")),
//		),
//		builder.Repeat("items",
//			builder.Paragraph(builder.Variable("label")),
//		),
//		builder.Button("View order", "https://example.com/orders",
//			builder.Align("center"),
//		),
//	)
//
// Trees produced by this package always satisfy document.Validate, so
// they feed straight into pkg/render or marshal to JSON for storage.
package builder
