// Package document defines the portable block-document model for email
// templates: a recursive tree of typed nodes with attributes, children,
// and inline marks, serialized as JSON.
//
// The model is pure data. Rendering lives in pkg/render, programmatic
// construction in pkg/builder. Trees are immutable by convention: nothing
// in this module mutates a parsed tree, so a single tree can be shared
// across concurrent renders.
//
// # Structure
//
// Every node carries a type discriminator and, depending on the variant,
// attributes, children, or text:
//
//	{
//	  "type": "doc",
//	  "content": [
//	    {"type": "paragraph", "content": [
//	      {"type": "text", "text": "Hello "},
//	      {"type": "variable", "attrs": {"id": "name", "fallback": "there"}}
//	    ]}
//	  ]
//	}
//
// # Usage
//
//	doc, err := document.Parse(raw)
//	if err != nil {
//		// structurally invalid template
//	}
//
// Parse validates the structural invariants (root must be a non-empty
// "doc", atomic nodes must not have children, "columns" may contain only
// "column" nodes, marks apply to text leaves only). Use Validate directly
// when the tree was built in memory.
package document
