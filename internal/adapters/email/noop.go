package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoopSender stands in for Resend when no API key is configured. It logs
// every message, so during development the welcome mail with the temporary
// password can still be read back from the server log.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message without delivering it.
// PRE: req is a valid SendRequest
// POST: Returns a synthetic result; nothing is delivered
func (s *NoopSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	now := time.Now()
	slog.Info("email_logged_only", "to", req.To, "subject", req.Subject, "body", req.HTML)
	return SendResult{
		MessageID: fmt.Sprintf("dev-%d", now.UnixNano()),
		SentAt:    now,
	}, nil
}

// SendBatch logs each message in turn without delivering any of them.
// PRE: reqs is a slice of SendRequests
// POST: Returns one synthetic result per request; nothing is delivered
func (s *NoopSender) SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error) {
	results := make([]SendResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := s.Send(ctx, req)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
