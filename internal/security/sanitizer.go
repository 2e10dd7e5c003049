package security

import (
	"strings"

	"clearview-web/internal/domain"
)

// EscapeHTML escapes text for safe embedding in an HTML body. It makes a
// single left-to-right pass over the input, so an ampersand in the source is
// escaped exactly once and entities produced by the later substitutions are
// never re-escaped.
//
// The replacement set matches what the email templates need: & < > " ' /
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		case '/':
			b.WriteString("&#x2F;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeSubmission escapes every user-supplied field of a submission.
// The result is safe to interpolate into HTML; the original submission keeps
// the raw values needed for routing decisions (e.g. the envelope recipient).
func SanitizeSubmission(s domain.ContactSubmission) domain.SanitizedSubmission {
	return domain.SanitizedSubmission{
		Name:    EscapeHTML(s.Name),
		Email:   EscapeHTML(s.Email),
		Phone:   EscapeHTML(s.Phone),
		Company: EscapeHTML(s.Company),
		Service: EscapeHTML(s.Service),
		Message: EscapeHTML(s.Message),
	}
}
