package security

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"clearview-web/internal/domain"
)

// DefaultTokenTTL is how long an issued CSRF token stays valid.
const DefaultTokenTTL = 1 * time.Hour

// GenerateToken creates a cryptographically secure random token (256 bits)
// returned as a 64-character hex string.
func GenerateToken() (string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(randomBytes), nil
}

// MemoryTokenStore is the single-instance TokenStore backend: a mutex-guarded
// map of outstanding one-time tokens. Issue opportunistically sweeps expired
// entries so the map cannot grow without bound even if nobody schedules
// DeleteExpired.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]domain.CsrfToken
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryTokenStore creates an empty token store with the default 1-hour TTL.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]domain.CsrfToken),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
}

func (s *MemoryTokenStore) Issue(ctx context.Context, clientAddr string) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	s.tokens[token] = domain.CsrfToken{
		Token:             token,
		ClientFingerprint: fmt.Sprintf("%s|%d", clientAddr, now.UnixNano()),
		ExpiresAt:         now.Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryTokenStore) Validate(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return domain.ErrUnknownToken
	}
	if s.now().After(entry.ExpiresAt) {
		delete(s.tokens, token)
		return domain.ErrExpiredToken
	}

	// One-time use: a successful validation consumes the token.
	delete(s.tokens, token)
	return nil
}

func (s *MemoryTokenStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now()), nil
}

// sweepLocked removes every expired entry. Caller must hold s.mu.
func (s *MemoryTokenStore) sweepLocked(now time.Time) int64 {
	var removed int64
	for token, entry := range s.tokens {
		if now.After(entry.ExpiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}
