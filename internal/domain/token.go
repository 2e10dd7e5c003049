package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMissingToken = errors.New("missing CSRF token")
	ErrUnknownToken = errors.New("unknown CSRF token")
	ErrExpiredToken = errors.New("expired CSRF token")
)

// CsrfToken is a one-time anti-forgery token issued to a page the server
// itself served. A token survives at most one validation attempt and at most
// one hour from issuance.
type CsrfToken struct {
	Token             string    `json:"token"`
	ClientFingerprint string    `json:"client_fingerprint"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// TokenStore issues and consumes one-time CSRF tokens. Implementations are
// in-memory (single instance) or redis-backed (shared across instances);
// either way Validate consumes the token on every outcome that settles its
// fate: success and expiry both delete it, only missing/unknown tokens are
// rejected non-destructively.
type TokenStore interface {
	Issue(ctx context.Context, clientAddr string) (string, error)
	// Validate returns nil on success or one of ErrMissingToken,
	// ErrUnknownToken, ErrExpiredToken.
	Validate(ctx context.Context, token string) error
	// DeleteExpired sweeps tokens past their expiry and reports how many
	// were removed. Safe to call from a background task.
	DeleteExpired(ctx context.Context) (int64, error)
}

// RateStore answers whether a client address may make another contact-form
// request within the current window. It is a pure accept/reject gate: no
// queueing, no delay.
type RateStore interface {
	Admit(ctx context.Context, clientAddr string) (bool, error)
}
