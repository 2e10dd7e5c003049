// Package redisstore provides redis-backed TokenStore and RateStore
// implementations so multi-instance deployments can share one-time token and
// rate-window state instead of each process keeping its own maps.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"clearview-web/internal/domain"
	"clearview-web/internal/security"
)

// TokenStore keeps one-time CSRF tokens in redis.
//
// Each token is a key holding its expiry as a unix timestamp. The key's redis
// TTL is twice the logical TTL so a validation attempt shortly after expiry
// can still be reported as ErrExpiredToken rather than ErrUnknownToken; after
// the grace period redis reclaims the key on its own.
type TokenStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

type TokenStoreOption func(*TokenStore)

func WithTokenPrefix(prefix string) TokenStoreOption {
	return func(s *TokenStore) { s.prefix = prefix }
}

func WithTokenTTL(d time.Duration) TokenStoreOption {
	return func(s *TokenStore) { s.ttl = d }
}

func NewTokenStore(rdb *redis.Client, opts ...TokenStoreOption) *TokenStore {
	s := &TokenStore{
		rdb:    rdb,
		prefix: "csrf:token:",
		ttl:    security.DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TokenStore) Issue(ctx context.Context, clientAddr string) (string, error) {
	token, err := security.GenerateToken()
	if err != nil {
		return "", err
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	// Value layout: "<expiry unix>|<client fingerprint>".
	value := fmt.Sprintf("%d|%s|%d", expiresAt.Unix(), clientAddr, now.UnixNano())
	if err := s.rdb.Set(ctx, s.prefix+token, value, 2*s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *TokenStore) Validate(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}

	// GETDEL makes consumption atomic across instances: whichever request
	// reads the token also removes it.
	val, err := s.rdb.GetDel(ctx, s.prefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrUnknownToken
	}
	if err != nil {
		return err
	}

	expiryField, _, _ := strings.Cut(val, "|")
	expiresAt, err := strconv.ParseInt(expiryField, 10, 64)
	if err != nil {
		return domain.ErrUnknownToken
	}
	if s.now().Unix() > expiresAt {
		return domain.ErrExpiredToken
	}
	return nil
}

// DeleteExpired is a no-op for the redis backend: key TTLs make redis sweep
// expired tokens itself.
func (s *TokenStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
