// Package scope implements variable resolution for template rendering: an
// explicit stack of name→value frames with inner-first lookup, fallback
// literals, required-variable semantics, and a stable textual placeholder
// format for rendering without substitution.
//
// The stack is passed by value through the render traversal. Push returns a
// new stack rather than mutating the receiver, so concurrent renders (and
// sibling repeat iterations) can never observe each other's frames.
//
// # Lookup order
//
// Innermost frame first, falling outward to the global payload, then to the
// per-variable fallback literal. A variable that resolves nowhere and has
// no fallback is reported as unresolved; whether that is an error depends
// on its required flag.
//
//	st := scope.NewStack(map[string]any{"name": "Alice"})
//	st = st.Push(map[string]any{"name": "Bob"})
//	v, _ := st.Lookup("name") // "Bob" — inner frame shadows the payload
//
// # Placeholder format
//
// Rendering without substitution encodes each reference as
// {{name,fallback=value}} (or {{name}} without a fallback). The format is
// stable: templates round-tripped through it stay inspectable and
// diffable, and Expand reverses it against a populated stack.
package scope
