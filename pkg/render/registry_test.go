package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblock/pkg/document"
)

func TestRegistry_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	fn := func(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
		return joinFragments(children), nil
	}

	require.NoError(t, r.Register("custom", fn))
	require.ErrorIs(t, r.Register("custom", fn), ErrDuplicateRenderer)
}

func TestDefaultRegistry_CoversBuiltins(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, nt := range []document.NodeType{
		document.TypeDoc, document.TypeSection, document.TypeColumns,
		document.TypeColumn, document.TypeRepeat, document.TypeBulletList,
		document.TypeOrderedList, document.TypeListItem, document.TypeParagraph,
		document.TypeHeading, document.TypeText, document.TypeButton,
		document.TypeImage, document.TypeDivider, document.TypeSpacer,
		document.TypeVariable, document.TypeRawHTML, document.TypeHardBreak,
	} {
		_, ok := r.lookup(nt)
		require.True(t, ok, "missing renderer for %q", nt)
	}
}

func TestEngine_CustomRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(document.TypeDoc, func(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
		return joinFragments(children), nil
	}))
	require.NoError(t, r.Register(document.TypeParagraph, func(_ *Context, _ *document.Node, children []Fragment) (Fragment, error) {
		return "[" + joinFragments(children) + "]", nil
	}))
	require.NoError(t, r.Register(document.TypeText, func(_ *Context, n *document.Node, _ []Fragment) (Fragment, error) {
		return Fragment(escapeHTML(n.Text)), nil
	}))

	res, err := NewEngine(r).Render(doc(para(txt("hi"))), Options{})
	require.NoError(t, err)
	require.Contains(t, res.HTML, "[hi]")

	// Types the custom registry does not know still fail loudly.
	_, err = NewEngine(r).Render(doc(&document.Node{Type: document.TypeDivider}), Options{})
	require.ErrorIs(t, err, ErrUnsupportedNodeType)
}
