package render

import (
	"log/slog"

	"github.com/dmitrymomot/mailblock/pkg/logger"
	"github.com/dmitrymomot/mailblock/pkg/theme"
)

// Mode selects between producing a final email and an inspectable
// template.
type Mode int

const (
	// ModeFinal substitutes variables from the payload. Default.
	ModeFinal Mode = iota

	// ModeTemplate renders without substitution: every variable reference
	// is emitted in the stable {{name,fallback=value}} format, conditional
	// visibility is not evaluated, and repeat bodies render exactly once.
	// Use it to round-trip or diff an un-populated template.
	ModeTemplate
)

// PlaceholderPolicy controls what an unresolved variable renders as.
type PlaceholderPolicy int

const (
	// PlaceholderEmpty renders unresolved non-required variables as empty
	// strings and fails the render on unresolved required ones. Default.
	PlaceholderEmpty PlaceholderPolicy = iota

	// PlaceholderBracketed substitutes the {{name,fallback=value}} format
	// for every unresolved variable, required or not, and never fails the
	// render over a missing value. Useful for previews.
	PlaceholderBracketed
)

// Options configures one render invocation. The zero value renders with
// the default theme, an empty payload, final mode, and no preheader
// extraction.
type Options struct {
	// Payload is the global variable scope, the outermost frame of the
	// scope stack.
	Payload map[string]any

	// Theme is a partial override deep-merged onto theme.Default once per
	// render.
	Theme *theme.Theme

	Mode              Mode
	PlaceholderPolicy PlaceholderPolicy

	// ExtractPreheader collects the leading rendered text into
	// Result.Preheader. The text is not duplicated into the visible body
	// unless InlinePreheader is also set.
	ExtractPreheader bool

	// InlinePreheader additionally embeds the extracted preheader as a
	// hidden element at the top of the body.
	InlinePreheader bool

	// PreheaderLimit caps the extracted preheader length in runes.
	// Defaults to 120.
	PreheaderLimit int

	// MaxRepeatIterations caps every repeat expansion. Zero means no cap;
	// hosts guarding against pathological payloads should set it.
	MaxRepeatIterations int

	// Logger receives non-fatal warnings (malformed repeat targets,
	// truncated expansions). Defaults to a discard logger.
	Logger *slog.Logger
}

const defaultPreheaderLimit = 120

func (o Options) withDefaults() Options {
	if o.PreheaderLimit <= 0 {
		o.PreheaderLimit = defaultPreheaderLimit
	}
	if o.Logger == nil {
		o.Logger = logger.NewNope()
	}
	return o
}

// Result is the output of one render invocation.
type Result struct {
	// HTML is the complete email document.
	HTML string

	// Preheader is the extracted preview text, empty unless
	// Options.ExtractPreheader was set.
	Preheader string
}
