package markdown

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

// Convert parses markdown and builds an equivalent block-document tree.
// Placeholder references in running text ({{name}}, {{name,fallback=x}})
// become variable nodes, so imported copy participates in payload
// substitution. The result always satisfies document.Validate; empty
// input (or input that maps to no blocks) is an error because an empty
// document cannot be rendered.
func Convert(src []byte) (*document.Node, error) {
	root := goldmark.New().Parser().Parse(gtext.NewReader(src))

	doc := &document.Node{Type: document.TypeDoc}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		block := convertBlock(c, src)
		if block != nil {
			doc.Content = append(doc.Content, block)
		}
	}

	if err := document.Validate(doc); err != nil {
		return nil, fmt.Errorf("markdown: conversion produced no renderable document: %w", err)
	}
	return doc, nil
}

func convertBlock(n ast.Node, src []byte) *document.Node {
	switch b := n.(type) {
	case *ast.Heading:
		level := b.Level
		if level > 3 {
			level = 3
		}
		return &document.Node{
			Type:    document.TypeHeading,
			Attrs:   map[string]any{"level": level},
			Content: convertInlines(b, src, nil),
		}

	case *ast.Paragraph:
		return paragraphOrImage(b, src)

	case *ast.TextBlock:
		// tight list items carry bare text blocks
		return paragraphOrImage(b, src)

	case *ast.List:
		t := document.TypeBulletList
		if b.IsOrdered() {
			t = document.TypeOrderedList
		}
		list := &document.Node{Type: t}
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			item := &document.Node{Type: document.TypeListItem}
			for ic := c.FirstChild(); ic != nil; ic = ic.NextSibling() {
				if block := convertBlock(ic, src); block != nil {
					item.Content = append(item.Content, block)
				}
			}
			if len(item.Content) > 0 {
				list.Content = append(list.Content, item)
			}
		}
		if len(list.Content) == 0 {
			return nil
		}
		return list

	case *ast.ThematicBreak:
		return &document.Node{Type: document.TypeDivider}

	case *ast.Blockquote:
		section := &document.Node{Type: document.TypeSection}
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			if block := convertBlock(c, src); block != nil {
				section.Content = append(section.Content, block)
			}
		}
		if len(section.Content) == 0 {
			return nil
		}
		return section

	case *ast.FencedCodeBlock:
		return codeParagraph(blockLines(b, src))

	case *ast.CodeBlock:
		return codeParagraph(blockLines(b, src))

	case *ast.HTMLBlock:
		raw := blockLines(b, src)
		if b.HasClosure() {
			raw += string(b.ClosureLine.Value(src))
		}
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		return &document.Node{
			Type:  document.TypeRawHTML,
			Attrs: map[string]any{"html": raw},
		}
	}
	return nil
}

// paragraphOrImage lifts a paragraph that consists solely of an image to a
// block-level image node; anything else becomes a paragraph of inlines.
func paragraphOrImage(n ast.Node, src []byte) *document.Node {
	inlines := convertInlines(n, src, nil)
	if len(inlines) == 0 {
		return nil
	}
	if len(inlines) == 1 && inlines[0].Type == document.TypeImage {
		return inlines[0]
	}
	return &document.Node{Type: document.TypeParagraph, Content: inlines}
}

func codeParagraph(code string) *document.Node {
	code = strings.TrimRight(code, "\n")
	if code == "" {
		return nil
	}
	return &document.Node{
		Type: document.TypeParagraph,
		Content: []*document.Node{{
			Type:  document.TypeText,
			Text:  code,
			Marks: []document.Mark{{Type: document.MarkCode}},
		}},
	}
}

func blockLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// convertInlines flattens an inline subtree into text leaves carrying the
// accumulated marks, plus image and hardBreak nodes where they occur.
func convertInlines(parent ast.Node, src []byte, marks []document.Mark) []*document.Node {
	var out []*document.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch i := c.(type) {
		case *ast.Text:
			txt := string(i.Segment.Value(src))
			if i.SoftLineBreak() {
				txt += " "
			}
			if txt != "" {
				out = append(out, inlineLeaves(txt, marks)...)
			}
			if i.HardLineBreak() {
				out = append(out, &document.Node{Type: document.TypeHardBreak})
			}

		case *ast.String:
			if len(i.Value) > 0 {
				out = append(out, inlineLeaves(string(i.Value), marks)...)
			}

		case *ast.Emphasis:
			m := document.Mark{Type: document.MarkItalic}
			if i.Level >= 2 {
				m = document.Mark{Type: document.MarkBold}
			}
			out = append(out, convertInlines(i, src, appendMark(marks, m))...)

		case *ast.Link:
			m := document.Mark{
				Type:  document.MarkLink,
				Attrs: map[string]any{"href": string(i.Destination)},
			}
			out = append(out, convertInlines(i, src, appendMark(marks, m))...)

		case *ast.AutoLink:
			url := string(i.URL(src))
			m := document.Mark{Type: document.MarkLink, Attrs: map[string]any{"href": url}}
			out = append(out, textLeaf(string(i.Label(src)), appendMark(marks, m)))

		case *ast.CodeSpan:
			code := codeSpanText(i, src)
			if code != "" {
				out = append(out, textLeaf(code, appendMark(marks, document.Mark{Type: document.MarkCode})))
			}

		case *ast.Image:
			img := &document.Node{
				Type: document.TypeImage,
				Attrs: map[string]any{
					"src": string(i.Destination),
					"alt": plainText(i, src),
				},
			}
			out = append(out, img)
		}
	}
	return out
}

// inlineLeaves splits placeholder-format references out of literal text,
// so "Hi {{name}}" imports as a text leaf plus a variable node instead of
// opaque copy. Marks do not carry over to variable nodes. Anything that
// is not a well-formed reference stays literal.
func inlineLeaves(s string, marks []document.Mark) []*document.Node {
	var out []*document.Node
	for {
		start := strings.Index(s, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], "}}")
		if end == -1 {
			break
		}
		end += start

		ref := s[start+2 : end]
		name, fallback := ref, ""
		if comma := strings.Index(ref, ","); comma != -1 {
			name = ref[:comma]
			if v, ok := strings.CutPrefix(ref[comma+1:], "fallback="); ok {
				fallback = v
			} else {
				name = ""
			}
		}
		if name == "" || strings.ContainsAny(name, " \t{}") {
			out = append(out, textLeaf(s[:end+2], marks))
			s = s[end+2:]
			continue
		}

		if start > 0 {
			out = append(out, textLeaf(s[:start], marks))
		}
		attrs := map[string]any{"id": name}
		if fallback != "" {
			attrs["fallback"] = fallback
		}
		out = append(out, &document.Node{Type: document.TypeVariable, Attrs: attrs})
		s = s[end+2:]
	}
	if s != "" {
		out = append(out, textLeaf(s, marks))
	}
	return out
}

func textLeaf(s string, marks []document.Mark) *document.Node {
	return &document.Node{Type: document.TypeText, Text: s, Marks: slices.Clone(marks)}
}

func appendMark(marks []document.Mark, m document.Mark) []document.Mark {
	return append(slices.Clone(marks), m)
}

func codeSpanText(n *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(plainText(c, src))
		}
	}
	return b.String()
}
