package scope

import "errors"

// ErrMissingVariable indicates a required variable had no value anywhere in
// the stack and no fallback.
var ErrMissingVariable = errors.New("missing required variable")
