package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL markup, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// Email clients render a narrow, table-era subset of HTML, so the
		// policy mirrors that subset: block and inline formatting tags,
		// layout tables, images, and inline styles. Scripts, event
		// handlers, and javascript: URLs never survive.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"p", "br", "span", "div",
			"strong", "b", "em", "i", "u", "s",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li",
			"code", "pre", "blockquote", "hr",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		emailPolicy.AllowAttrs("align", "valign", "width", "border", "cellpadding", "cellspacing").OnElements("table", "tr", "td", "th")
		emailPolicy.AllowAttrs("style").Globally()
	})
}

// SanitizeEmailHTML cleans markup destined for an email body. It keeps the
// subset of HTML that email clients actually render (formatting tags,
// layout tables, images, inline styles) and strips everything dangerous:
// scripts, event handlers, iframes, and javascript: URLs.
func SanitizeEmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// StripTags removes all HTML, leaving plain text. Use it to derive a
// text-only rendition from already-rendered markup.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}
