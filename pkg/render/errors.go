package render

import "errors"

var (
	// ErrUnsupportedNodeType indicates a node type with no registered
	// renderer. Fatal to the whole render: silently dropping a section of
	// a production email is worse than a loud failure.
	ErrUnsupportedNodeType = errors.New("unsupported node type")

	// ErrMalformedRepeatTarget indicates a repeat node whose "each"
	// attribute did not resolve to a sequence. Non-fatal: the repeat emits
	// nothing and the engine logs a warning.
	ErrMalformedRepeatTarget = errors.New("repeat target is not a sequence")

	// ErrDuplicateRenderer indicates two registrations for one node type.
	ErrDuplicateRenderer = errors.New("renderer already registered for node type")
)
