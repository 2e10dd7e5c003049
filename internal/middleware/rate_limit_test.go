package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_BasicFunctionality(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 2, 2) // 2 req/sec, burst 2

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"

	// Burst of two succeeds
	for i := 1; i <= 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("request %d: expected status 200, got %d", i, rr.Code)
		}
	}

	// Third request should be rate limited (burst exhausted)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("third request: expected status 429, got %d", rr.Code)
	}
}

func TestRateLimiter_PerIPLimiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, 1)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"192.168.1.1:1234", "192.168.1.2:1234"} {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = addr

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("%s first request: expected 200, got %d", addr, rr.Code)
		}

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusTooManyRequests {
			t.Errorf("%s second request: expected 429, got %d", addr, rr.Code)
		}
	}
}

func TestRateLimiter_CleanupRemovesStaleEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 10, 1)

	for i := 0; i < 100; i++ {
		rl.getLimiter("192.168.1." + string(rune('0'+i%10)) + ":" + string(rune('0'+i)))
	}

	rl.mu.Lock()
	oldTime := time.Now().Add(-20 * time.Minute) // older than limiterTTL
	for key := range rl.limiters {
		rl.limiters[key].lastAccess = oldTime
	}
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	remaining := len(rl.limiters)
	rl.mu.Unlock()

	if remaining != 0 {
		t.Errorf("limiters after cleanup = %d, want 0", remaining)
	}
}
