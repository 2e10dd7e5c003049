package mail

import (
	"strings"
	"testing"

	"clearview-web/internal/domain"
)

func sanitized() domain.SanitizedSubmission {
	return domain.SanitizedSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "line one\nline two",
	}
}

func TestNewNotification(t *testing.T) {
	msg := NewNotification("noreply@x.example", "hello@x.example", sanitized())

	if msg.Kind != KindNotification {
		t.Errorf("kind = %s, want notification", msg.Kind)
	}
	if msg.From != "noreply@x.example" || msg.To != "hello@x.example" {
		t.Errorf("from/to = %s/%s", msg.From, msg.To)
	}
	if msg.Subject != "New Contact Form Submission from Jane Doe" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.MessageID == "" {
		t.Error("MessageID is empty")
	}
	if !strings.Contains(msg.HTMLBody, "jane@example.com") {
		t.Error("body missing submitter email")
	}
	// Whitespace is preserved via pre-wrap, not flattened into the markup.
	if !strings.Contains(msg.HTMLBody, "white-space: pre-wrap") {
		t.Error("body does not preserve message whitespace")
	}
	if !strings.Contains(msg.HTMLBody, "line one\nline two") {
		t.Error("body does not carry the message verbatim")
	}
}

func TestNewNotification_OptionalFields(t *testing.T) {
	s := sanitized()

	msg := NewNotification("noreply@x.example", "hello@x.example", s)
	for _, label := range []string{"Phone", "Company", "Service of Interest"} {
		if strings.Contains(msg.HTMLBody, label) {
			t.Errorf("body lists %q for an absent field", label)
		}
	}

	s.Phone = "+1 555 0100"
	s.Company = "Example Corp"
	s.Service = "Consulting"
	msg = NewNotification("noreply@x.example", "hello@x.example", s)
	for _, want := range []string{"+1 555 0100", "Example Corp", "Consulting"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("body missing optional field value %q", want)
		}
	}
}

func TestNewAutoReply(t *testing.T) {
	msg := NewAutoReply("noreply@x.example", "jane@example.com", sanitized())

	if msg.Kind != KindAutoReply {
		t.Errorf("kind = %s, want auto_reply", msg.Kind)
	}
	if msg.To != "jane@example.com" {
		t.Errorf("to = %s, want the raw recipient", msg.To)
	}
	if msg.Subject != "Thank you for contacting us!" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "Jane Doe") {
		t.Error("body does not greet the submitter by name")
	}
	if !strings.Contains(msg.HTMLBody, "line one\nline two") {
		t.Error("body does not echo the message back")
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	a := NewNotification("noreply@x.example", "hello@x.example", sanitized())
	b := NewAutoReply("noreply@x.example", "jane@example.com", sanitized())
	if a.MessageID == b.MessageID {
		t.Error("the two dispatched documents share a MessageID")
	}
}
