package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"clearview-web/internal/domain"
	"clearview-web/internal/mail"
	"clearview-web/internal/observability"
	"clearview-web/internal/security"
)

// Loose shape check only: something@something.something. First-line defense,
// not an RFC 5322 validator; the mail server is the final arbiter.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService validates, sanitizes and dispatches contact-form
// submissions. Dispatch sends two documents in sequence: the business
// notification, then the submitter auto-reply. If either send fails the whole
// operation fails and the caller gets no partial-success signal; correlating
// a partial delivery requires the mail server's own logs.
type ContactService struct {
	transport  mail.Transport
	fromAddr   string
	notifyAddr string
}

// NewContactService creates a contact service. A nil transport marks mail as
// unconfigured: submissions are rejected with ErrMailNotConfigured instead of
// crashing the process.
func NewContactService(transport mail.Transport, fromAddr, notifyAddr string) *ContactService {
	return &ContactService{
		transport:  transport,
		fromAddr:   fromAddr,
		notifyAddr: notifyAddr,
	}
}

// Configured reports whether a mail transport is wired in.
func (s *ContactService) Configured() bool {
	return s.transport != nil
}

// Validate applies the structural and format checks on a submission.
// Optional fields (phone, company, service) are never format-checked.
func (s *ContactService) Validate(sub domain.ContactSubmission) error {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		strings.TrimSpace(sub.Message) == "" {
		return domain.ErrMissingRequiredField
	}
	if !emailRegex.MatchString(sub.Email) {
		return domain.ErrInvalidEmailFormat
	}
	return nil
}

// Submit runs the submission through validation, sanitization and dispatch.
func (s *ContactService) Submit(ctx context.Context, sub domain.ContactSubmission) error {
	if !s.Configured() {
		return domain.ErrMailNotConfigured
	}
	if err := s.Validate(sub); err != nil {
		return err
	}

	sanitized := security.SanitizeSubmission(sub)

	notification := mail.NewNotification(s.fromAddr, s.notifyAddr, sanitized)
	// The auto-reply goes to the raw submitted address; escaping is for
	// HTML contexts only, never for the envelope recipient.
	autoReply := mail.NewAutoReply(s.fromAddr, sub.Email, sanitized)

	for _, msg := range []*mail.Message{notification, autoReply} {
		if err := s.send(ctx, msg); err != nil {
			observability.ContactSubmissionsTotal.WithLabelValues("dispatch_failed").Inc()
			return fmt.Errorf("%w: %s", domain.ErrDispatchFailed, msg.Kind)
		}
	}

	observability.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	return nil
}

func (s *ContactService) send(ctx context.Context, msg *mail.Message) error {
	start := time.Now()
	err := s.transport.Send(ctx, msg)
	observability.MailSendDuration.WithLabelValues(string(msg.Kind)).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.MailSendFailuresTotal.WithLabelValues(string(msg.Kind)).Inc()
		// Log the failure for operator diagnosis, never the submission content.
		observability.FromContext(ctx).Error("mail send failed",
			slog.String("kind", string(msg.Kind)),
			slog.String("message_id", msg.MessageID),
			slog.String("error", err.Error()),
		)
		return err
	}

	observability.FromContext(ctx).Info("mail sent",
		slog.String("kind", string(msg.Kind)),
		slog.String("message_id", msg.MessageID),
	)
	return nil
}
