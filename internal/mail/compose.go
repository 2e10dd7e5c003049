package mail

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"clearview-web/internal/domain"
)

// NewNotification builds the email sent to the business for a new submission.
// Every interpolated field comes from the sanitized submission; the raw
// values never reach an HTML context.
func NewNotification(from, to string, s domain.SanitizedSubmission) *Message {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", s.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", s.Email)
	if s.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", s.Phone)
	}
	if s.Company != "" {
		fmt.Fprintf(&b, "<p><strong>Company:</strong> %s</p>\n", s.Company)
	}
	if s.Service != "" {
		fmt.Fprintf(&b, "<p><strong>Service of Interest:</strong> %s</p>\n", s.Service)
	}
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<div style=\"white-space: pre-wrap;\">%s</div>\n", s.Message)

	return &Message{
		MessageID: uuid.New().String(),
		Kind:      KindNotification,
		From:      from,
		To:        to,
		Subject:   fmt.Sprintf("New Contact Form Submission from %s", s.Name),
		HTMLBody:  b.String(),
	}
}

// NewAutoReply builds the thank-you email sent back to the submitter.
// rawRecipient is the unescaped address used as the envelope recipient.
func NewAutoReply(from, rawRecipient string, s domain.SanitizedSubmission) *Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you for reaching out, %s!</h2>\n", s.Name)
	b.WriteString("<p>We have received your message and will get back to you as soon as possible.</p>\n")
	b.WriteString("<p>Here is a copy of what you sent us:</p>\n")
	fmt.Fprintf(&b, "<blockquote style=\"white-space: pre-wrap;\">%s</blockquote>\n", s.Message)
	b.WriteString("<p>Best regards,<br>The Clearview Team</p>\n")

	return &Message{
		MessageID: uuid.New().String(),
		Kind:      KindAutoReply,
		From:      from,
		To:        rawRecipient,
		Subject:   "Thank you for contacting us!",
		HTMLBody:  b.String(),
	}
}
