// Package mailer delivers rendered block-document emails through
// pluggable providers.
//
// The package separates sending (via providers implementing Sender) from
// rendering (pkg/render), so providers can be swapped while the template
// pipeline stays the same.
//
// # Usage
//
// Basic usage with the built-in Resend provider:
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "team@example.com",
//		SenderName:  "Team",
//	})
//
//	m := mailer.New(sender, mailer.Config{
//		FallbackSubject: "Notification",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Document: tmpl, // *document.Node, parsed or built once
//		Subject:  "Your order, {{name}}",
//		Payload:  map[string]any{"name": "Alice", "items": items},
//	})
//
// The document tree is immutable and shared: sending the same template to
// many recipients renders each payload independently (see
// render.RenderAll for bulk fan-out).
//
// Subjects may carry the same {{name,fallback=value}} placeholder format
// as the document body; they are expanded against the payload before
// sending.
//
// Every outgoing message gets an X-Entity-Ref-ID header with a fresh UUID
// unless the caller set one, which providers like Resend use for
// idempotent delivery.
package mailer
