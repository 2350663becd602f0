package render

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/scope"
	"github.com/dmitrymomot/mailblock/pkg/theme"
)

// itemKey is the implicit scope name for repeat items that are not
// mappings: repeating over ["a", "b"] exposes each element as {{item}}.
const itemKey = "item"

// Engine renders document trees to email HTML. A single Engine is safe for
// concurrent use: all per-invocation state lives in the Context built
// inside Render.
type Engine struct {
	reg *Registry
}

// NewEngine creates an engine over the given registry. A nil registry
// means DefaultRegistry.
func NewEngine(reg *Registry) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Engine{reg: reg}
}

// Render renders a whole document with the default registry.
func Render(tree *document.Node, opts Options) (*Result, error) {
	return NewEngine(nil).Render(tree, opts)
}

// Render transforms a document tree plus options into a complete email.
//
// The tree is validated first, the theme merged once, and the payload
// seeded as the outermost scope frame. Traversal is pre-order and
// depth-first: conditional visibility prunes a subtree before any variable
// inside it is resolved, repeat nodes expand into per-item sub-renders
// with their own scope frame, and every other node renders its children
// bottom-up before dispatching through the registry. The input tree is
// never mutated.
func (e *Engine) Render(tree *document.Node, opts Options) (*Result, error) {
	if err := document.Validate(tree); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	effective := theme.Default()
	if opts.Theme != nil {
		effective = theme.Merge(effective, *opts.Theme)
	}

	rc := &Context{
		Theme:  effective,
		Scopes: scope.NewStack(opts.Payload),
		opts:   opts,
		log:    opts.Logger,
		reg:    e.reg,
	}
	if opts.ExtractPreheader {
		rc.ph = &preheaderState{limit: opts.PreheaderLimit}
	}

	body, err := renderNode(rc, tree)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if rc.ph != nil {
		res.Preheader = rc.ph.text()
	}
	res.HTML = documentShell(rc, body, res.Preheader)
	return res, nil
}

// renderNode visits one node: visibility check, repeat interception, then
// children-first assembly and registry dispatch.
func renderNode(rc *Context, n *document.Node) (Fragment, error) {
	// Prune-first: a hidden subtree is dropped before any lookup inside it
	// is attempted. Template mode keeps everything visible.
	if key, ok := n.StringAttr("showIfKey"); ok && key != "" && rc.opts.Mode != ModeTemplate {
		v, found := rc.Scopes.Lookup(key)
		if !found || !scope.Truthy(v) {
			return "", nil
		}
	}

	if n.Type == document.TypeRepeat {
		return expandRepeat(rc, n)
	}

	children, err := renderChildren(rc, n)
	if err != nil {
		return "", err
	}

	fn, ok := rc.reg.lookup(n.Type)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedNodeType, n.Type)
	}
	return fn(rc, n, children)
}

func renderChildren(rc *Context, n *document.Node) ([]Fragment, error) {
	if len(n.Content) == 0 {
		return nil, nil
	}
	children := make([]Fragment, 0, len(n.Content))
	for _, c := range n.Content {
		frag, err := renderNode(rc, c)
		if err != nil {
			return nil, err
		}
		children = append(children, frag)
	}
	return children, nil
}

// expandRepeat renders a repeat node's children once per item of the
// sequence named by its "each" attribute, innermost scope frame per
// iteration. A target that is missing or not a sequence is non-fatal: the
// node emits nothing and a warning is logged. In template mode the body
// renders exactly once with placeholders kept.
func expandRepeat(rc *Context, n *document.Node) (Fragment, error) {
	if rc.opts.Mode == ModeTemplate {
		children, err := renderChildren(rc, n)
		if err != nil {
			return "", err
		}
		return joinFragments(children), nil
	}

	each, _ := n.StringAttr("each")
	if each == "" {
		rc.log.Warn("repeat node missing each attribute")
		return "", nil
	}

	v, found := rc.Scopes.Lookup(each)
	if !found {
		rc.log.Warn("repeat target unresolved, emitting nothing", "each", each)
		return "", nil
	}
	items, ok := scope.Sequence(v)
	if !ok {
		rc.log.Warn("malformed repeat target, emitting nothing",
			"each", each, "error", ErrMalformedRepeatTarget)
		return "", nil
	}

	if limit := rc.opts.MaxRepeatIterations; limit > 0 && len(items) > limit {
		rc.log.Warn("repeat expansion truncated", "each", each, "items", len(items), "limit", limit)
		items = items[:limit]
	}

	var b strings.Builder
	for _, item := range items {
		frame, ok := item.(map[string]any)
		if !ok {
			frame = map[string]any{itemKey: item}
		}
		ic := rc.withFrame(frame)
		for _, c := range n.Content {
			frag, err := renderNode(ic, c)
			if err != nil {
				return "", err
			}
			b.WriteString(string(frag))
		}
	}
	return Fragment(b.String()), nil
}

// documentShell wraps the rendered body in the email scaffold: doctype,
// page background, and the centered container table styled from the
// effective theme.
func documentShell(rc *Context, body Fragment, preheader string) string {
	t := rc.Theme

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("</head>\n")
	fmt.Fprintf(&b, `<body style="margin:0;padding:0;background-color:%s;">`+"\n", t.Colors.Background)

	if rc.opts.InlinePreheader && preheader != "" {
		fmt.Fprintf(&b, `<div style="display:none;max-height:0;overflow:hidden;mso-hide:all;">%s</div>`+"\n",
			escapeHTML(preheader))
	}

	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">`)
	b.WriteString(`<tr><td align="center" style="padding:24px 12px;">`)
	fmt.Fprintf(&b,
		`<table role="presentation" width="%d" cellpadding="0" cellspacing="0" border="0" style="width:%dpx;max-width:100%%;background-color:%s;border-radius:%dpx;">`,
		t.Container.Width, t.Container.Width, t.Colors.Surface, t.Container.BorderRadius)
	fmt.Fprintf(&b, `<tr><td style="padding:%dpx;">`, t.Container.Padding)
	b.WriteString(string(body))
	b.WriteString("</td></tr></table>")
	b.WriteString("</td></tr></table>\n</body>\n</html>\n")
	return b.String()
}
