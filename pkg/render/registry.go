package render

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

// Fragment is a rendered piece of email HTML. Node renderers receive their
// children already rendered and return a single fragment, so the
// dispatcher has no variant-specific branching outside the registry
// lookup.
type Fragment string

// NodeFunc renders one node variant. Children arrive pre-rendered in
// source order; the func is responsible for escaping any text it
// introduces.
type NodeFunc func(rc *Context, n *document.Node, children []Fragment) (Fragment, error)

// Registry maps node types to their renderers. Completeness is checked at
// registration time: rendering a type with no entry fails the whole
// invocation with ErrUnsupportedNodeType.
type Registry struct {
	funcs map[document.NodeType]NodeFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[document.NodeType]NodeFunc)}
}

// Register binds a renderer to a node type. Registering the same type
// twice is an error; use it to extend the vocabulary, not to silently
// replace built-ins.
func (r *Registry) Register(t document.NodeType, fn NodeFunc) error {
	if _, exists := r.funcs[t]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, t)
	}
	r.funcs[t] = fn
	return nil
}

func (r *Registry) lookup(t document.NodeType) (NodeFunc, bool) {
	fn, ok := r.funcs[t]
	return fn, ok
}

var defaultRegistry = sync.OnceValue(buildDefaultRegistry)

// DefaultRegistry returns the shared registry covering every built-in node
// variant. It is read-only after construction and safe to share across
// concurrent renders.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func buildDefaultRegistry() *Registry {
	r := NewRegistry()
	for t, fn := range map[document.NodeType]NodeFunc{
		document.TypeDoc:         renderDoc,
		document.TypeSection:     renderSection,
		document.TypeColumns:     renderColumns,
		document.TypeColumn:      renderColumn,
		document.TypeRepeat:      renderRepeatBody,
		document.TypeBulletList:  renderBulletList,
		document.TypeOrderedList: renderOrderedList,
		document.TypeListItem:    renderListItem,
		document.TypeParagraph:   renderParagraph,
		document.TypeHeading:     renderHeading,
		document.TypeText:        renderText,
		document.TypeButton:      renderButton,
		document.TypeImage:       renderImage,
		document.TypeDivider:     renderDivider,
		document.TypeSpacer:      renderSpacer,
		document.TypeVariable:    renderVariable,
		document.TypeRawHTML:     renderRawHTML,
		document.TypeHardBreak:   renderHardBreak,
	} {
		if err := r.Register(t, fn); err != nil {
			panic(err) // unreachable: the map cannot hold duplicate keys
		}
	}
	return r
}
