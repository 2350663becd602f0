package scope

// Stack is an ordered set of variable frames. Index 0 is the outermost
// frame (the global payload); each repeat iteration pushes one frame on
// top. The zero value is a valid empty stack.
type Stack []map[string]any

// NewStack creates a stack with the payload as its sole frame.
// A nil payload yields an empty stack.
func NewStack(payload map[string]any) Stack {
	if payload == nil {
		return Stack{}
	}
	return Stack{payload}
}

// Push returns a new stack with frame as the innermost scope. The receiver
// is left untouched: the returned stack owns its own backing array, so
// holding on to it cannot alias a sibling iteration's frames.
func (s Stack) Push(frame map[string]any) Stack {
	next := make(Stack, len(s)+1)
	copy(next, s)
	next[len(s)] = frame
	return next
}

// Lookup searches the stack innermost→outermost for name. The first frame
// containing the name wins, so iteration fields shadow identically-named
// globals.
func (s Stack) Lookup(name string) (any, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}
