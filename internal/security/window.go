package security

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultWindow is the contact-form rate-limit window.
	DefaultWindow = 15 * time.Minute
	// DefaultWindowLimit is the number of admitted requests per address per window.
	DefaultWindowLimit = 5
)

type rateWindow struct {
	count       int
	windowStart time.Time
}

// MemoryRateStore is a fixed-window request counter keyed by client address.
// The counter resets once the current time passes windowStart + window; until
// then each address gets at most limit admissions.
type MemoryRateStore struct {
	mu        sync.Mutex
	windows   map[string]*rateWindow
	window    time.Duration
	limit     int
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryRateStore creates a rate store with the given window and limit.
func NewMemoryRateStore(window time.Duration, limit int) *MemoryRateStore {
	return &MemoryRateStore{
		windows: make(map[string]*rateWindow),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

func (s *MemoryRateStore) Admit(ctx context.Context, clientAddr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	w, ok := s.windows[clientAddr]
	if !ok || now.Sub(w.windowStart) >= s.window {
		s.windows[clientAddr] = &rateWindow{count: 1, windowStart: now}
		return true, nil
	}
	if w.count >= s.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// sweepLocked drops windows that already elapsed, at most once per window
// duration, so idle addresses do not accumulate. Caller must hold s.mu.
func (s *MemoryRateStore) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.window {
		return
	}
	s.lastSweep = now
	for addr, w := range s.windows {
		if now.Sub(w.windowStart) >= s.window {
			delete(s.windows, addr)
		}
	}
}
