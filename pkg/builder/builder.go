package builder

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

// Option sets an attribute on the node under construction.
type Option func(*document.Node)

// Attr sets an arbitrary attribute.
func Attr(key string, value any) Option {
	return func(n *document.Node) {
		if n.Attrs == nil {
			n.Attrs = make(map[string]any)
		}
		n.Attrs[key] = value
	}
}

// ShowIf makes the node (and its subtree) render only when key is truthy
// in the payload.
func ShowIf(key string) Option { return Attr("showIfKey", key) }

// Align sets horizontal alignment ("left", "center", "right").
func Align(v string) Option { return Attr("alignment", v) }

// TextAlign sets the text-align style on text-bearing blocks.
func TextAlign(v string) Option { return Attr("textAlign", v) }

// Fallback sets the literal used when a variable does not resolve.
func Fallback(v string) Option { return Attr("fallback", v) }

// Required marks the node's variable references as required: rendering
// fails (or substitutes a placeholder, per policy) when they don't
// resolve.
func Required() Option { return Attr("required", true) }

// AsVariable redirects the named attribute through the variable resolver:
// the field's value is treated as a variable name instead of a literal.
func AsVariable(field string) Option {
	return func(n *document.Node) {
		flag := "is" + upperFirst(field) + "Variable"
		Attr(flag, true)(n)
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// newNode builds a node of the given type from a mixed argument list of
// child nodes and options. Anything else panics: builder misuse is a
// programming error, not input.
func newNode(t document.NodeType, args []any) *document.Node {
	n := &document.Node{Type: t}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// skipped, so callers can pass conditional children
		case *document.Node:
			n.Content = append(n.Content, v)
		case Option:
			v(n)
		default:
			panic(fmt.Sprintf("builder: unsupported argument %T for %q node", arg, t))
		}
	}
	return n
}

// Doc builds the document root.
func Doc(args ...any) *document.Node { return newNode(document.TypeDoc, args) }

// Section groups blocks with optional background, padding, and radius.
func Section(args ...any) *document.Node { return newNode(document.TypeSection, args) }

// Columns lays out Column children side by side.
func Columns(args ...any) *document.Node { return newNode(document.TypeColumns, args) }

// Column is a single cell inside Columns.
func Column(args ...any) *document.Node { return newNode(document.TypeColumn, args) }

// Repeat renders its children once per item of the payload sequence named
// by each. Mapping items expose their fields to inner variables; other
// items are available as {{item}}.
func Repeat(each string, args ...any) *document.Node {
	return newNode(document.TypeRepeat, append(args, Attr("each", each)))
}

// Paragraph holds inline content.
func Paragraph(args ...any) *document.Node { return newNode(document.TypeParagraph, args) }

// Heading builds a heading of the given level (1–3).
func Heading(level int, args ...any) *document.Node {
	return newNode(document.TypeHeading, append(args, Attr("level", level)))
}

// H1, H2, and H3 are Heading shorthands.
func H1(args ...any) *document.Node { return Heading(1, args...) }
func H2(args ...any) *document.Node { return Heading(2, args...) }
func H3(args ...any) *document.Node { return Heading(3, args...) }

// BulletList, OrderedList, and ListItem build lists.
func BulletList(args ...any) *document.Node  { return newNode(document.TypeBulletList, args) }
func OrderedList(args ...any) *document.Node { return newNode(document.TypeOrderedList, args) }
func ListItem(args ...any) *document.Node    { return newNode(document.TypeListItem, args) }

// Text builds a text leaf, optionally with inline marks.
func Text(s string, marks ...document.Mark) *document.Node {
	return &document.Node{Type: document.TypeText, Text: s, Marks: marks}
}

// Bold, Italic, and Code build single-mark text leaves.
func Bold(s string) *document.Node   { return Text(s, document.Mark{Type: document.MarkBold}) }
func Italic(s string) *document.Node { return Text(s, document.Mark{Type: document.MarkItalic}) }
func Code(s string) *document.Node   { return Text(s, document.Mark{Type: document.MarkCode}) }

// Link builds a text leaf wrapped in a link mark.
func Link(s, href string) *document.Node {
	return Text(s, document.Mark{Type: document.MarkLink, Attrs: map[string]any{"href": href}})
}

// Variable builds an inline variable reference.
func Variable(id string, opts ...Option) *document.Node {
	args := make([]any, 0, len(opts)+1)
	args = append(args, any(Attr("id", id)))
	for _, o := range opts {
		args = append(args, any(o))
	}
	return newNode(document.TypeVariable, args)
}

// Button builds a call-to-action. Pass AsVariable("text") or
// AsVariable("url") to resolve either field from the payload instead.
func Button(text, url string, opts ...Option) *document.Node {
	args := make([]any, 0, len(opts)+2)
	args = append(args, any(Attr("text", text)), any(Attr("url", url)))
	for _, o := range opts {
		args = append(args, any(o))
	}
	return newNode(document.TypeButton, args)
}

// Image builds an image block.
func Image(src string, opts ...Option) *document.Node {
	args := make([]any, 0, len(opts)+1)
	args = append(args, any(Attr("src", src)))
	for _, o := range opts {
		args = append(args, any(o))
	}
	return newNode(document.TypeImage, args)
}

// Divider builds a horizontal rule.
func Divider() *document.Node { return &document.Node{Type: document.TypeDivider} }

// Spacer builds vertical whitespace of the given height in pixels.
func Spacer(height int) *document.Node {
	return newNode(document.TypeSpacer, []any{Attr("height", height)})
}

// HardBreak builds a line break inside inline content.
func HardBreak() *document.Node { return &document.Node{Type: document.TypeHardBreak} }

// RawHTML embeds pre-built markup; it is sanitized at render time.
func RawHTML(html string) *document.Node {
	return newNode(document.TypeRawHTML, []any{Attr("html", html)})
}
