package document

import "errors"

var (
	// ErrInvalidDocument indicates the tree violates a structural invariant.
	ErrInvalidDocument = errors.New("invalid document structure")

	// ErrEmptyDocument indicates a nil tree or a root with no content.
	ErrEmptyDocument = errors.New("document has no content")
)
