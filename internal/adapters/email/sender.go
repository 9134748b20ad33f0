// Package email delivers Waaranders transactional mail: the welcome message
// with a temporary password for new volunteers, and announcements when an
// activity is published.
package email

import (
	"context"
	"time"
)

// SendRequest describes one outgoing message.
type SendRequest struct {
	To      []string
	From    string // Overrides DefaultFrom when set, e.g. "Waaranders <noreply@waaranders.nl>"
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult is the provider's acknowledgement of a queued message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender abstracts the mail provider, so development setups can swap in a
// log-only implementation.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
	SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error)
}
