package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"clearview-web/internal/security"
)

// RateStore counts contact-form requests per client address in redis using a
// fixed window: INCR on a per-address key whose TTL is set only when the key
// is created, so the window ends a fixed duration after its first request.
type RateStore struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
	limit  int64
}

type RateStoreOption func(*RateStore)

func WithRatePrefix(prefix string) RateStoreOption {
	return func(s *RateStore) { s.prefix = prefix }
}

func WithRateWindow(window time.Duration, limit int) RateStoreOption {
	return func(s *RateStore) {
		s.window = window
		s.limit = int64(limit)
	}
}

func NewRateStore(rdb *redis.Client, opts ...RateStoreOption) *RateStore {
	s := &RateStore{
		rdb:    rdb,
		prefix: "contact:window:",
		window: security.DefaultWindow,
		limit:  security.DefaultWindowLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RateStore) Admit(ctx context.Context, clientAddr string) (bool, error) {
	key := s.prefix + clientAddr

	pipe := s.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= s.limit, nil
}
