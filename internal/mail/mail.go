// Package mail composes the contact-form notification emails and delivers
// them through an external SMTP transport.
package mail

import "context"

// Kind labels the two documents the dispatcher produces.
type Kind string

const (
	KindNotification Kind = "notification"
	KindAutoReply    Kind = "auto_reply"
)

// Message is one fully composed email document.
type Message struct {
	// MessageID is attached as the RFC 5322 Message-ID so partial
	// deliveries can be correlated in mail-server logs. There is no
	// record-then-send step; delivery of the pair is not atomic.
	MessageID string
	Kind      Kind
	From      string
	To        string
	Subject   string
	HTMLBody  string
}

// Transport delivers one composed message. It is the single capability this
// package requires of the external mail service.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}
