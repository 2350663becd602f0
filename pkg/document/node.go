package document

import "encoding/json"

// NodeType discriminates node variants. The renderer dispatches on this
// value; an unregistered type fails the whole render.
type NodeType string

// Container variants hold block-level children.
const (
	TypeDoc         NodeType = "doc"
	TypeSection     NodeType = "section"
	TypeColumns     NodeType = "columns"
	TypeColumn      NodeType = "column"
	TypeRepeat      NodeType = "repeat"
	TypeBulletList  NodeType = "bulletList"
	TypeOrderedList NodeType = "orderedList"
	TypeListItem    NodeType = "listItem"
)

// Text-bearing variants hold inline content.
const (
	TypeParagraph NodeType = "paragraph"
	TypeHeading   NodeType = "heading"
	TypeText      NodeType = "text"
)

// Atomic variants never have children.
const (
	TypeButton    NodeType = "button"
	TypeImage     NodeType = "image"
	TypeDivider   NodeType = "divider"
	TypeSpacer    NodeType = "spacer"
	TypeVariable  NodeType = "variable"
	TypeRawHTML   NodeType = "rawHtml"
	TypeHardBreak NodeType = "hardBreak"
)

// Node is the recursive unit of the document tree.
//
// Content and Marks use nil to mean "absent": atomic nodes never carry a
// content array at all, and the distinction survives JSON round-trips via
// omitempty.
type Node struct {
	Type    NodeType       `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is inline formatting applied to a text leaf (bold, italic, link...).
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Mark types understood by the default renderer.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkLink      = "link"
	MarkTextStyle = "textStyle"
)

// IsAtomic reports whether the type is a leaf variant that never has
// children.
func (t NodeType) IsAtomic() bool {
	switch t {
	case TypeButton, TypeImage, TypeDivider, TypeSpacer, TypeVariable, TypeRawHTML, TypeHardBreak:
		return true
	}
	return false
}

// IsContainer reports whether the type may hold block-level children.
func (t NodeType) IsContainer() bool {
	switch t {
	case TypeDoc, TypeSection, TypeColumns, TypeColumn, TypeRepeat, TypeBulletList, TypeOrderedList, TypeListItem:
		return true
	}
	return false
}

// IsInline reports whether the type may appear inside text-bearing
// variants (paragraph, heading). Images count: markdown and editors both
// place them mid-copy.
func (t NodeType) IsInline() bool {
	switch t {
	case TypeText, TypeVariable, TypeHardBreak, TypeImage:
		return true
	}
	return false
}

// StringAttr returns the named attribute as a string.
// The second return value reports whether the attribute was present and a
// string.
func (n *Node) StringAttr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// BoolAttr returns the named attribute as a bool, false if absent or not a
// bool.
func (n *Node) BoolAttr(name string) bool {
	v, ok := n.Attrs[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IntAttr returns the named attribute as an int. JSON numbers decode as
// float64, so both widths are accepted. Returns def when absent or not
// numeric.
func (n *Node) IntAttr(name string, def int) int {
	v, ok := n.Attrs[name]
	if !ok {
		return def
	}
	switch num := v.(type) {
	case int:
		return num
	case int64:
		return int(num)
	case float64:
		return int(num)
	}
	return def
}

// FloatAttr returns the named attribute as a float64, accepting integer
// widths too. Returns def when absent or not numeric.
func (n *Node) FloatAttr(name string, def float64) float64 {
	v, ok := n.Attrs[name]
	if !ok {
		return def
	}
	switch num := v.(type) {
	case float64:
		return num
	case int:
		return float64(num)
	case int64:
		return float64(num)
	}
	return def
}

// Parse decodes a JSON document tree and validates its structure.
func Parse(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if err := Validate(&n); err != nil {
		return nil, err
	}
	return &n, nil
}
