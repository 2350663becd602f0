package render

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/scope"
	"github.com/dmitrymomot/mailblock/pkg/theme"
)

// Context carries the state of one render invocation: the effective theme,
// the current scope stack, and the options. Contexts are values; entering
// a repeat iteration derives a new context with one more frame instead of
// mutating the parent, so sibling iterations and concurrent renders never
// share scope state.
type Context struct {
	// Theme is the effective style configuration, merged once per render.
	Theme theme.Theme

	// Scopes is the current variable scope stack, innermost frame last.
	Scopes scope.Stack

	opts Options
	log  *slog.Logger
	reg  *Registry
	ph   *preheaderState
}

// Logger returns the warning logger for this render.
func (rc *Context) Logger() *slog.Logger { return rc.log }

// withFrame derives a context whose scope stack has frame on top.
func (rc *Context) withFrame(frame map[string]any) *Context {
	next := *rc
	next.Scopes = rc.Scopes.Push(frame)
	return &next
}

// resolveString resolves a variable reference to its interpolated text.
// In template mode it always returns the stable placeholder format. An
// unresolved variable follows the placeholder policy: bracketed
// substitutes the placeholder (even for required variables), empty yields
// "" for optional ones and fails the render for required ones.
func (rc *Context) resolveString(name, fallback string, required bool) (string, error) {
	if rc.opts.Mode == ModeTemplate {
		return scope.Placeholder(name, fallback), nil
	}

	res, err := scope.Resolve(rc.Scopes, name, fallback, required)
	if err != nil {
		if rc.opts.PlaceholderPolicy == PlaceholderBracketed {
			return scope.Placeholder(name, fallback), nil
		}
		return "", err
	}
	if !res.Resolved {
		if rc.opts.PlaceholderPolicy == PlaceholderBracketed {
			return scope.Placeholder(name, fallback), nil
		}
		return "", nil
	}
	return scope.FormatValue(res.Value), nil
}

// resolveAttr returns a node attribute's literal value, or, when the
// node's is<Field>Variable flag is set, resolves the value as a variable
// name. A per-field fallback may ride along in <field>Fallback; the node's
// required flag applies to all of its variable-bearing fields.
func (rc *Context) resolveAttr(n *document.Node, field string) (string, error) {
	raw, _ := n.StringAttr(field)
	flag := "is" + strings.ToUpper(field[:1]) + field[1:] + "Variable"
	if !n.BoolAttr(flag) {
		return raw, nil
	}
	fallback, _ := n.StringAttr(field + "Fallback")
	return rc.resolveString(raw, fallback, n.BoolAttr("required"))
}

// notePreheader feeds resolved text into the preheader collector, if one
// is active. Text leaves are visited in document order during the
// traversal, so the collected prefix matches the reading order of the
// rendered email.
func (rc *Context) notePreheader(text string) {
	if rc.ph != nil {
		rc.ph.add(text)
	}
}

// preheaderState accumulates preview text up to a rune budget. It is owned
// by exactly one render invocation.
type preheaderState struct {
	b     strings.Builder
	limit int
	full  bool
}

func (p *preheaderState) add(text string) {
	if p.full {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(text)
	if utf8.RuneCountInString(p.b.String()) >= p.limit {
		p.full = true
	}
}

func (p *preheaderState) text() string {
	s := p.b.String()
	runes := []rune(s)
	if len(runes) > p.limit {
		return string(runes[:p.limit])
	}
	return s
}
