package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrNoDocument indicates SendParams carried no document tree.
	ErrNoDocument = errors.New("no document to render")

	// ErrRenderFailed indicates document rendering failed.
	ErrRenderFailed = errors.New("failed to render document")

	// ErrSendFailed indicates email delivery failed.
	ErrSendFailed = errors.New("failed to send email")
)
