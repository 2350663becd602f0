package document

import "fmt"

// Validate checks the structural invariants of a document tree:
//
//   - the root node is "doc" with non-empty content
//   - atomic variants never have content
//   - "paragraph" and "heading" hold exclusively inline children
//   - "columns" holds exclusively "column" children
//   - marks apply only to "text" leaves
//   - "variable" nodes are inline-only and never direct children of "doc"
//
// Violations are reported against the offending node's path, e.g.
// "doc.content[2].content[0]". Unknown node types are not rejected here;
// they surface as render-time errors so custom registries can extend the
// vocabulary.
func Validate(root *Node) error {
	if root == nil {
		return ErrEmptyDocument
	}
	if root.Type != TypeDoc {
		return fmt.Errorf("%w: root node must be %q, got %q", ErrInvalidDocument, TypeDoc, root.Type)
	}
	if len(root.Content) == 0 {
		return ErrEmptyDocument
	}
	for i, child := range root.Content {
		if child != nil && child.Type == TypeVariable {
			return fmt.Errorf("%w: doc.content[%d]: %q is inline-only and cannot be a direct child of %q",
				ErrInvalidDocument, i, TypeVariable, TypeDoc)
		}
	}
	return validateNode(root, "doc")
}

func validateNode(n *Node, path string) error {
	if n == nil {
		return fmt.Errorf("%w: %s: nil node", ErrInvalidDocument, path)
	}

	if n.Type.IsAtomic() && len(n.Content) > 0 {
		return fmt.Errorf("%w: %s: atomic node %q must not have content", ErrInvalidDocument, path, n.Type)
	}

	if len(n.Marks) > 0 && n.Type != TypeText {
		return fmt.Errorf("%w: %s: marks are only allowed on %q nodes, found on %q",
			ErrInvalidDocument, path, TypeText, n.Type)
	}

	if n.Type == TypeText && len(n.Content) > 0 {
		return fmt.Errorf("%w: %s: text leaf must not have content", ErrInvalidDocument, path)
	}

	for i, child := range n.Content {
		childPath := fmt.Sprintf("%s.content[%d]", path, i)
		if child == nil {
			return fmt.Errorf("%w: %s: nil node", ErrInvalidDocument, childPath)
		}
		if n.Type == TypeColumns && child.Type != TypeColumn {
			return fmt.Errorf("%w: %s: %q may contain only %q nodes, got %q",
				ErrInvalidDocument, childPath, TypeColumns, TypeColumn, child.Type)
		}
		// Block-level children belong to container variants only; a section
		// spliced inside a paragraph must fail here instead of rendering
		// table markup inside a <p>.
		if (n.Type == TypeParagraph || n.Type == TypeHeading) && !child.Type.IsInline() {
			return fmt.Errorf("%w: %s: %q may contain only inline nodes, got %q",
				ErrInvalidDocument, childPath, n.Type, child.Type)
		}
		if err := validateNode(child, childPath); err != nil {
			return err
		}
	}
	return nil
}
