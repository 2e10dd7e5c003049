package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the transport credentials supplied at process startup.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// SendTimeout bounds one dial-and-send round trip so a hung mail
	// server blocks only the submitting request, never the process.
	SendTimeout time.Duration
}

// SMTPTransport delivers messages over authenticated SMTP with mandatory TLS.
type SMTPTransport struct {
	client      *gomail.Client
	sendTimeout time.Duration
}

// NewSMTPTransport creates the SMTP transport. It does not dial; connection
// errors surface on the first Send.
func NewSMTPTransport(cfg SMTPConfig) (*SMTPTransport, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SMTPTransport{client: client, sendTimeout: timeout}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)
	if msg.MessageID != "" {
		m.SetMessageIDWithValue(msg.MessageID)
	}

	sendCtx, cancel := context.WithTimeout(ctx, t.sendTimeout)
	defer cancel()

	if err := t.client.DialAndSendWithContext(sendCtx, m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
