package render

import (
	"fmt"
	"strconv"
	"strings"
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// Beyond the standard entities it escapes whitespace characters that could
// break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func joinFragments(frags []Fragment) Fragment {
	switch len(frags) {
	case 0:
		return ""
	case 1:
		return frags[0]
	}
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(string(f))
	}
	return Fragment(b.String())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// bodyTextStyle is the inline style shared by body copy: paragraphs and
// list containers.
func (rc *Context) bodyTextStyle() string {
	t := rc.Theme
	return fmt.Sprintf("font-family:%s;font-size:%dpx;line-height:%s;color:%s;",
		t.Font.Family, t.Font.Size, formatFloat(t.Font.LineHeight), t.Colors.Text)
}

// alignStyle turns a textAlign attribute into an inline style, empty when
// the attribute is absent.
func alignStyle(v string) string {
	switch v {
	case "left", "center", "right", "justify":
		return "text-align:" + v + ";"
	}
	return ""
}
