package scope

import (
	"fmt"
	"strings"
)

// Resolution is the outcome of a variable lookup. Resolved reports whether
// a value (or fallback) was found; when false, Value is nil and the caller
// decides between empty output and a bracketed placeholder.
type Resolution struct {
	Value    any
	Resolved bool
}

// Resolve looks up name in the stack, innermost frame first.
//
// Not found with a non-empty fallback returns the fallback as a literal.
// Not found without a fallback returns ErrMissingVariable when required,
// otherwise an unresolved Resolution.
func Resolve(st Stack, name, fallback string, required bool) (Resolution, error) {
	if v, ok := st.Lookup(name); ok {
		return Resolution{Value: v, Resolved: true}, nil
	}
	if fallback != "" {
		return Resolution{Value: fallback, Resolved: true}, nil
	}
	if required {
		return Resolution{}, fmt.Errorf("%w: %q", ErrMissingVariable, name)
	}
	return Resolution{}, nil
}

// Placeholder encodes a variable reference in the stable wire format used
// when rendering without substitution: {{name,fallback=value}}, or
// {{name}} when no fallback is set.
func Placeholder(name, fallback string) string {
	if fallback == "" {
		return "{{" + name + "}}"
	}
	return "{{" + name + ",fallback=" + fallback + "}}"
}

// Expand substitutes every placeholder-format reference in s against the
// stack. References that resolve nowhere and carry no fallback are kept
// verbatim so the output stays inspectable. Malformed braces pass through
// unchanged.
func Expand(s string, st Stack) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.Index(s, "{{")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}}")
		if end == -1 {
			b.WriteString(s)
			return b.String()
		}
		end += start

		b.WriteString(s[:start])
		ref := s[start+2 : end]

		name, fallback := ref, ""
		if comma := strings.Index(ref, ","); comma != -1 {
			name = ref[:comma]
			rest := ref[comma+1:]
			if v, ok := strings.CutPrefix(rest, "fallback="); ok {
				fallback = v
			}
		}

		if res, err := Resolve(st, name, fallback, false); err == nil && res.Resolved {
			b.WriteString(FormatValue(res.Value))
		} else {
			b.WriteString(s[start : end+2])
		}
		s = s[end+2:]
	}
}
