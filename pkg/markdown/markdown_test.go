package markdown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/markdown"
	"github.com/dmitrymomot/mailblock/pkg/render"
)

func TestConvert_Headings(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("# Title\n\n## Sub\n\n#### Deep\n"))
	require.NoError(t, err)
	require.Len(t, doc.Content, 3)

	require.Equal(t, document.TypeHeading, doc.Content[0].Type)
	require.Equal(t, 1, doc.Content[0].IntAttr("level", 0))
	require.Equal(t, "Title", doc.Content[0].Content[0].Text)

	require.Equal(t, 2, doc.Content[1].IntAttr("level", 0))

	// levels deeper than h3 are clamped
	require.Equal(t, 3, doc.Content[2].IntAttr("level", 0))
}

func TestConvert_InlineMarks(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("plain **bold** *italic* `code` [docs](https://example.com)\n"))
	require.NoError(t, err)
	require.Len(t, doc.Content, 1)

	para := doc.Content[0]
	require.Equal(t, document.TypeParagraph, para.Type)

	byText := map[string]*document.Node{}
	for _, leaf := range para.Content {
		byText[leaf.Text] = leaf
	}

	require.Empty(t, byText["plain "].Marks)
	require.Equal(t, document.MarkBold, byText["bold"].Marks[0].Type)
	require.Equal(t, document.MarkItalic, byText["italic"].Marks[0].Type)
	require.Equal(t, document.MarkCode, byText["code"].Marks[0].Type)

	link := byText["docs"]
	require.Equal(t, document.MarkLink, link.Marks[0].Type)
	require.Equal(t, "https://example.com", link.Marks[0].Attrs["href"])
}

func TestConvert_NestedEmphasis(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("***both***\n"))
	require.NoError(t, err)

	leaf := doc.Content[0].Content[0]
	require.Equal(t, "both", leaf.Text)
	require.Len(t, leaf.Marks, 2)
}

func TestConvert_Lists(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("- one\n- two\n\n1. first\n2. second\n"))
	require.NoError(t, err)
	require.Len(t, doc.Content, 2)

	bullets := doc.Content[0]
	require.Equal(t, document.TypeBulletList, bullets.Type)
	require.Len(t, bullets.Content, 2)
	require.Equal(t, document.TypeListItem, bullets.Content[0].Type)
	require.Equal(t, "one", bullets.Content[0].Content[0].Content[0].Text)

	ordered := doc.Content[1]
	require.Equal(t, document.TypeOrderedList, ordered.Type)
	require.Len(t, ordered.Content, 2)
}

func TestConvert_ThematicBreakAndCode(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("before\n\n---\n\n```\nfmt.Println(\"hi\")\n```\n"))
	require.NoError(t, err)
	require.Len(t, doc.Content, 3)

	require.Equal(t, document.TypeDivider, doc.Content[1].Type)

	code := doc.Content[2]
	require.Equal(t, document.TypeParagraph, code.Type)
	require.Equal(t, `fmt.Println("hi")`, code.Content[0].Text)
	require.Equal(t, document.MarkCode, code.Content[0].Marks[0].Type)
}

func TestConvert_Blockquote(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("> quoted line\n"))
	require.NoError(t, err)

	section := doc.Content[0]
	require.Equal(t, document.TypeSection, section.Type)
	require.Equal(t, document.TypeParagraph, section.Content[0].Type)
}

func TestConvert_SoleImageBecomesBlock(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("![logo](https://example.com/logo.png)\n"))
	require.NoError(t, err)

	img := doc.Content[0]
	require.Equal(t, document.TypeImage, img.Type)
	src, _ := img.StringAttr("src")
	require.Equal(t, "https://example.com/logo.png", src)
	alt, _ := img.StringAttr("alt")
	require.Equal(t, "logo", alt)
}

func TestConvert_HardBreak(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("first  \nsecond\n"))
	require.NoError(t, err)

	para := doc.Content[0]
	var sawBreak bool
	for _, n := range para.Content {
		if n.Type == document.TypeHardBreak {
			sawBreak = true
		}
	}
	require.True(t, sawBreak)
}

func TestConvert_PlaceholdersBecomeVariables(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("Hello {{name}}, plan: {{plan,fallback=Free}}.\n"))
	require.NoError(t, err)

	para := doc.Content[0]
	var vars []*document.Node
	for _, n := range para.Content {
		if n.Type == document.TypeVariable {
			vars = append(vars, n)
		}
	}
	require.Len(t, vars, 2)
	id, _ := vars[0].StringAttr("id")
	require.Equal(t, "name", id)
	id, _ = vars[1].StringAttr("id")
	require.Equal(t, "plan", id)
	fallback, _ := vars[1].StringAttr("fallback")
	require.Equal(t, "Free", fallback)

	res, err := render.Render(doc, render.Options{
		Payload: map[string]any{"name": "Ada"},
	})
	require.NoError(t, err)
	require.Contains(t, res.HTML, "Hello Ada")
	require.Contains(t, res.HTML, "plan: Free")
}

func TestConvert_MalformedPlaceholderStaysLiteral(t *testing.T) {
	t.Parallel()

	doc, err := markdown.Convert([]byte("keep {{bad name}} and {{}} as-is\n"))
	require.NoError(t, err)

	for _, n := range doc.Content[0].Content {
		require.NotEqual(t, document.TypeVariable, n.Type)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := markdown.Convert([]byte(""))
	require.Error(t, err)
	require.ErrorIs(t, err, document.ErrEmptyDocument)
}

func TestConvert_RendersEndToEnd(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"# Release notes",
		"",
		"We shipped **three** fixes:",
		"",
		"- faster imports",
		"- better errors",
		"- [full changelog](https://example.com/changelog)",
	}, "\n")

	doc, err := markdown.Convert([]byte(src))
	require.NoError(t, err)
	require.NoError(t, document.Validate(doc))

	res, err := render.Render(doc, render.Options{})
	require.NoError(t, err)
	require.Contains(t, res.HTML, "Release notes")
	require.Contains(t, res.HTML, "<strong>three</strong>")
	require.Contains(t, res.HTML, `href="https://example.com/changelog"`)
	require.Contains(t, res.HTML, "<ul")
}
