package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailblock/pkg/document"
	"github.com/dmitrymomot/mailblock/pkg/render"
	"github.com/dmitrymomot/mailblock/pkg/sanitizer"
	"github.com/dmitrymomot/mailblock/pkg/scope"
	"github.com/dmitrymomot/mailblock/pkg/theme"
)

// refIDHeader carries the idempotency key providers use to deduplicate
// retried sends.
const refIDHeader = "X-Entity-Ref-ID"

// Mailer renders block-document templates and delivers them through a
// Sender. One Mailer is safe for concurrent use.
type Mailer struct {
	sender Sender
	engine *render.Engine
	config Config
}

// New creates a Mailer over the given provider using the default render
// registry.
func New(sender Sender, cfg Config) *Mailer {
	return NewWithEngine(sender, render.NewEngine(nil), cfg)
}

// NewWithEngine creates a Mailer with a custom render engine, e.g. one
// whose registry carries extra node types.
func NewWithEngine(sender Sender, engine *render.Engine, cfg Config) *Mailer {
	return &Mailer{sender: sender, engine: engine, config: cfg}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string         // Single recipient (most common case)
	Document *document.Node // Template tree to render
	Payload  map[string]any // Variable values for this recipient
	Theme    *theme.Theme   // Optional theme override
	Subject  string         // Subject line, may carry {{var}} placeholders
	Options  render.Options // Render options; Payload and Theme above win

	// Optional overrides
	From        string            // Override default sender
	ReplyTo     string            // Reply-to address
	CC          []string          // Carbon copy
	BCC         []string          // Blind carbon copy
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider tags
	Attachments []Attachment      // File attachments
}

// Send renders the document for one recipient and delivers it.
//
// The extracted preheader is embedded as hidden preview text. Subject
// resolution: params.Subject (placeholder-expanded against the payload),
// falling back to the configured FallbackSubject.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}
	if params.Document == nil {
		return ErrNoDocument
	}

	opts := params.Options
	opts.Payload = params.Payload
	if params.Theme != nil {
		opts.Theme = params.Theme
	}
	opts.ExtractPreheader = true
	opts.InlinePreheader = true

	res, err := m.engine.Render(params.Document, opts)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = m.config.FallbackSubject
	}
	subject = scope.Expand(subject, scope.NewStack(params.Payload))

	headers := make(map[string]string, len(params.Headers)+1)
	for k, v := range params.Headers {
		headers[k] = v
	}
	if _, ok := headers[refIDHeader]; !ok {
		headers[refIDHeader] = uuid.NewString()
	}

	// The preheader doubles as the plain-text part; documents without any
	// preheader-eligible text fall back to the stripped body copy.
	text := res.Preheader
	if text == "" {
		text = strings.TrimSpace(sanitizer.StripTags(res.HTML))
	}

	email := &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        res.HTML,
		Text:        text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Headers:     headers,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// SendRaw sends a pre-built email without rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
