// Package testutil provides shared test utilities, mocks, and fixtures
// for testing the clearview-web application.
package testutil

import (
	"context"
	"errors"
	"sync"

	"clearview-web/internal/mail"
)

// ErrMockNotImplemented is returned by mocks with no override and no default.
var ErrMockNotImplemented = errors.New("mock function not implemented")

// MockTransport implements mail.Transport for testing. By default every send
// succeeds and is recorded; set Err or SendFunc to customize behavior.
type MockTransport struct {
	mu sync.Mutex

	// Function override - set to customize behavior
	SendFunc func(ctx context.Context, msg *mail.Message) error

	// Err, when set, is returned by every Send
	Err error

	// Sent records every message handed to the transport, in order
	Sent []*mail.Message
}

func (m *MockTransport) Send(ctx context.Context, msg *mail.Message) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentCount returns how many messages were recorded.
func (m *MockTransport) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// MockTokenStore implements domain.TokenStore for testing.
type MockTokenStore struct {
	IssueFunc         func(ctx context.Context, clientAddr string) (string, error)
	ValidateFunc      func(ctx context.Context, token string) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)
}

func (m *MockTokenStore) Issue(ctx context.Context, clientAddr string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, clientAddr)
	}
	return "", ErrMockNotImplemented
}

func (m *MockTokenStore) Validate(ctx context.Context, token string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	return ErrMockNotImplemented
}

func (m *MockTokenStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

// MockRateStore implements domain.RateStore for testing. Admits everything
// unless AdmitFunc is set or Rejected is true.
type MockRateStore struct {
	AdmitFunc func(ctx context.Context, clientAddr string) (bool, error)
	Rejected  bool
}

func (m *MockRateStore) Admit(ctx context.Context, clientAddr string) (bool, error) {
	if m.AdmitFunc != nil {
		return m.AdmitFunc(ctx, clientAddr)
	}
	return !m.Rejected, nil
}
