package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

// Resend caps batch calls at 100 messages.
const resendBatchLimit = 100

// ResendSender delivers Waaranders mail through the Resend API.
type ResendSender struct {
	client      *resend.Client
	defaultFrom string
}

// NewResendSender creates a sender that falls back to from when a request
// carries no explicit sender address.
// PRE: apiKey is a valid Resend API key; from is a valid sender address
// POST: Returns a ready-to-use sender
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client:      resend.NewClient(apiKey),
		defaultFrom: from,
	}
}

// toParams maps a SendRequest onto the Resend wire format, filling in the
// configured default sender where needed.
func (s *ResendSender) toParams(req SendRequest) *resend.SendEmailRequest {
	p := &resend.SendEmailRequest{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		Html:    req.HTML,
	}
	if p.From == "" {
		p.From = s.defaultFrom
	}
	if req.ReplyTo != "" {
		p.ReplyTo = req.ReplyTo
	}
	return p
}

// Send delivers a single email.
// PRE: req has at least one recipient and a subject
// POST: Email is queued for delivery; returns the Resend message ID
func (s *ResendSender) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, s.toParams(req))
	if err != nil {
		slog.Error("email_send_failed", "provider", "resend", "error", err, "to", req.To, "subject", req.Subject)
		return SendResult{}, fmt.Errorf("resend send failed: %w", err)
	}

	slog.Info("email_sent", "provider", "resend", "message_id", sent.Id, "to", req.To, "subject", req.Subject)
	return SendResult{MessageID: sent.Id, SentAt: time.Now()}, nil
}

// SendBatch delivers emails in chunks of at most resendBatchLimit, used for
// activity announcements that go to every active volunteer.
// PRE: len(reqs) > 0
// POST: All emails are queued; returns results in the same order as requests
func (s *ResendSender) SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error) {
	var results []SendResult

	for len(reqs) > 0 {
		n := len(reqs)
		if n > resendBatchLimit {
			n = resendBatchLimit
		}

		params := make([]*resend.SendEmailRequest, n)
		for i, req := range reqs[:n] {
			params[i] = s.toParams(req)
		}

		resp, err := s.client.Batch.SendWithContext(ctx, params)
		if err != nil {
			slog.Error("email_batch_failed", "provider", "resend", "error", err, "batch_size", n)
			return results, fmt.Errorf("resend batch send failed: %w", err)
		}
		for _, item := range resp.Data {
			results = append(results, SendResult{MessageID: item.Id, SentAt: time.Now()})
		}

		slog.Info("email_batch_sent", "provider", "resend", "count", n, "total_sent", len(results))
		reqs = reqs[n:]
	}

	return results, nil
}
