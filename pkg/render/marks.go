package render

import (
	"fmt"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

// applyMarks wraps already-escaped inner text with the markup for each
// mark, last mark innermost. Marks never trigger variable resolution;
// unknown mark types pass the text through untouched.
func applyMarks(rc *Context, inner string, marks []document.Mark) string {
	for i := len(marks) - 1; i >= 0; i-- {
		inner = applyMark(rc, inner, marks[i])
	}
	return inner
}

func applyMark(rc *Context, inner string, m document.Mark) string {
	switch m.Type {
	case document.MarkBold:
		return "<strong>" + inner + "</strong>"
	case document.MarkItalic:
		return "<em>" + inner + "</em>"
	case document.MarkUnderline:
		return `<span style="text-decoration:underline;">` + inner + "</span>"
	case document.MarkStrike:
		return "<s>" + inner + "</s>"
	case document.MarkCode:
		return fmt.Sprintf(
			`<code style="font-family:Menlo, Consolas, monospace;font-size:%dpx;background-color:%s;padding:2px 4px;border-radius:4px;">%s</code>`,
			rc.Theme.Font.Size-2, rc.Theme.Colors.Background, inner)
	case document.MarkLink:
		href := markString(m, "href")
		return fmt.Sprintf(`<a href="%s" target="_blank" style="color:%s;text-decoration:underline;">%s</a>`,
			escapeAttr(href), rc.Theme.Colors.Link, inner)
	case document.MarkTextStyle:
		if color := markString(m, "color"); color != "" {
			return fmt.Sprintf(`<span style="color:%s;">%s</span>`, escapeAttr(color), inner)
		}
		return inner
	}
	return inner
}

func markString(m document.Mark, key string) string {
	if v, ok := m.Attrs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
