package mailblock

import (
	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/render"
	"github.com/dmitrymomot/mailblock/pkg/theme"
)

// Type aliases - public API
type (
	// Node is the recursive unit of a template tree.
	Node = document.Node

	// NodeType discriminates node variants.
	NodeType = document.NodeType

	// Mark is inline formatting applied to a text leaf.
	Mark = document.Mark

	// Theme is the style configuration consumed by the renderer.
	Theme = theme.Theme

	// Options configures one render invocation.
	Options = render.Options

	// Result is the output of one render invocation.
	Result = render.Result

	// Engine renders document trees to email HTML.
	Engine = render.Engine

	// Registry maps node types to rendering functions.
	Registry = render.Registry
)

// Parse decodes and validates a JSON template tree.
func Parse(data []byte) (*Node, error) {
	return document.Parse(data)
}

// Validate checks a tree's structural invariants.
func Validate(n *Node) error {
	return document.Validate(n)
}

// Render renders a template with the default registry.
func Render(tree *Node, opts Options) (*Result, error) {
	return render.Render(tree, opts)
}

// DefaultTheme returns the stock theme, the base every override merges
// onto.
func DefaultTheme() Theme {
	return theme.Default()
}
