package render

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/sanitizer"
)

func renderDoc(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
	return joinFragments(children), nil
}

// renderRepeatBody is the registry entry for repeat nodes. The engine
// intercepts repeat expansion before dispatch, so this only splices
// already-rendered children for callers driving the registry directly.
func renderRepeatBody(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
	return joinFragments(children), nil
}

func renderText(rc *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	rc.notePreheader(n.Text)
	return Fragment(applyMarks(rc, escapeHTML(n.Text), n.Marks)), nil
}

func renderVariable(rc *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	name, _ := n.StringAttr("id")
	fallback, _ := n.StringAttr("fallback")
	s, err := rc.resolveString(name, fallback, n.BoolAttr("required"))
	if err != nil {
		return "", err
	}
	rc.notePreheader(s)
	return Fragment(escapeHTML(s)), nil
}

func renderParagraph(rc *Context, n *document.Node, children []Fragment) (Fragment, error) {
	align, _ := n.StringAttr("textAlign")
	return Fragment(fmt.Sprintf(`<p style="margin:0 0 16px;%s%s">%s</p>`,
		rc.bodyTextStyle(), alignStyle(align), joinFragments(children))), nil
}

func renderHeading(rc *Context, n *document.Node, children []Fragment) (Fragment, error) {
	level := n.IntAttr("level", 1)
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	t := rc.Theme
	size := t.Font.H1Size
	switch level {
	case 2:
		size = t.Font.H2Size
	case 3:
		size = t.Font.H3Size
	}
	align, _ := n.StringAttr("textAlign")
	return Fragment(fmt.Sprintf(
		`<h%d style="margin:0 0 16px;font-family:%s;font-size:%dpx;line-height:1.25;color:%s;%s">%s</h%d>`,
		level, t.Font.Family, size, t.Colors.Heading, alignStyle(align), joinFragments(children), level)), nil
}

func renderHardBreak(_ *Context, _ *document.Node, _ []Fragment) (Fragment, error) {
	return "<br>", nil
}

func renderButton(rc *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	label, err := rc.resolveAttr(n, "text")
	if err != nil {
		return "", err
	}
	url, err := rc.resolveAttr(n, "url")
	if err != nil {
		return "", err
	}

	t := rc.Theme
	bg := t.Button.Background
	if v, ok := n.StringAttr("backgroundColor"); ok && v != "" {
		bg = v
	}
	color := t.Button.Text
	if v, ok := n.StringAttr("textColor"); ok && v != "" {
		color = v
	}
	align, _ := n.StringAttr("alignment")
	if align == "" {
		align = "left"
	}

	return Fragment(fmt.Sprintf(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr><td align="%s" style="padding:0 0 16px;">`+
			`<a href="%s" target="_blank" style="display:inline-block;background-color:%s;color:%s;font-family:%s;font-size:%dpx;font-weight:600;text-decoration:none;padding:%dpx %dpx;border-radius:%dpx;">%s</a>`+
			`</td></tr></table>`,
		escapeAttr(align), escapeAttr(url), escapeAttr(bg), escapeAttr(color), t.Font.Family, t.Font.Size,
		t.Button.PaddingY, t.Button.PaddingX, t.Button.BorderRadius, escapeHTML(label))), nil
}

func renderImage(rc *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	src, err := rc.resolveAttr(n, "src")
	if err != nil {
		return "", err
	}
	if src == "" {
		return "", nil
	}

	alt, _ := n.StringAttr("alt")
	align, _ := n.StringAttr("alignment")
	if align == "" {
		align = "center"
	}
	widthAttr := ""
	if w := n.IntAttr("width", 0); w > 0 {
		widthAttr = fmt.Sprintf(` width="%d"`, w)
	}

	return Fragment(fmt.Sprintf(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr><td align="%s" style="padding:0 0 16px;">`+
			`<img src="%s" alt="%s"%s style="display:block;border:0;outline:none;max-width:100%%;height:auto;">`+
			`</td></tr></table>`,
		escapeAttr(align), escapeAttr(src), escapeAttr(alt), widthAttr)), nil
}

func renderDivider(rc *Context, _ *document.Node, _ []Fragment) (Fragment, error) {
	return Fragment(fmt.Sprintf(`<hr style="border:none;border-top:1px solid %s;margin:24px 0;">`,
		rc.Theme.Colors.Border)), nil
}

func renderSpacer(_ *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	h := n.IntAttr("height", 16)
	return Fragment(fmt.Sprintf(`<div style="height:%dpx;line-height:%dpx;font-size:1px;">&nbsp;</div>`, h, h)), nil
}

func renderSection(rc *Context, n *document.Node, children []Fragment) (Fragment, error) {
	var style strings.Builder
	if bg, ok := n.StringAttr("backgroundColor"); ok && bg != "" {
		fmt.Fprintf(&style, "background-color:%s;", escapeAttr(bg))
	}
	if p := n.IntAttr("padding", 0); p > 0 {
		fmt.Fprintf(&style, "padding:%dpx;", p)
	}
	if r := n.IntAttr("borderRadius", 0); r > 0 {
		fmt.Fprintf(&style, "border-radius:%dpx;", r)
	}
	return Fragment(fmt.Sprintf(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr><td style="%s">%s</td></tr></table>`,
		style.String(), joinFragments(children))), nil
}

func renderColumns(_ *Context, n *document.Node, children []Fragment) (Fragment, error) {
	for i, c := range n.Content {
		if c.Type != document.TypeColumn {
			return "", fmt.Errorf("%w: columns.content[%d] is %q, want %q",
				document.ErrInvalidDocument, i, c.Type, document.TypeColumn)
		}
	}
	return Fragment(fmt.Sprintf(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0"><tr>%s</tr></table>`,
		joinFragments(children))), nil
}

func renderColumn(_ *Context, n *document.Node, children []Fragment) (Fragment, error) {
	widthAttr := ""
	if w, ok := n.StringAttr("width"); ok && w != "" {
		widthAttr = fmt.Sprintf(` width="%s"`, escapeAttr(w))
	}
	valign, _ := n.StringAttr("verticalAlign")
	if valign == "" {
		valign = "top"
	}
	return Fragment(fmt.Sprintf(`<td%s valign="%s" style="padding:0 8px;">%s</td>`,
		widthAttr, escapeAttr(valign), joinFragments(children))), nil
}

func renderBulletList(rc *Context, _ *document.Node, children []Fragment) (Fragment, error) {
	return Fragment(fmt.Sprintf(`<ul style="margin:0 0 16px;padding:0 0 0 24px;%s">%s</ul>`,
		rc.bodyTextStyle(), joinFragments(children))), nil
}

func renderOrderedList(rc *Context, _ *document.Node, children []Fragment) (Fragment, error) {
	return Fragment(fmt.Sprintf(`<ol style="margin:0 0 16px;padding:0 0 0 24px;%s">%s</ol>`,
		rc.bodyTextStyle(), joinFragments(children))), nil
}

func renderListItem(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
	return Fragment(fmt.Sprintf(`<li style="margin:0 0 8px;">%s</li>`, joinFragments(children))), nil
}

func renderRawHTML(_ *Context, n *document.Node, _ []Fragment) (Fragment, error) {
	raw, _ := n.StringAttr("html")
	return Fragment(sanitizer.SanitizeEmailHTML(raw)), nil
}
