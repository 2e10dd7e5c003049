package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clearview-web/internal/security"
	"clearview-web/internal/testutil"
)

func TestContactWindow_SixthRequestRejected(t *testing.T) {
	store := security.NewMemoryRateStore(15*time.Minute, 5)
	handler := ContactWindow(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	for i := 1; i <= 5; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("6th request: status = %d, want 429", rr.Code)
	}
}

func TestContactWindow_PortIgnoredInKey(t *testing.T) {
	store := security.NewMemoryRateStore(15*time.Minute, 5)
	handler := ContactWindow(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Same address from five different source ports exhausts one window.
	ports := []string{"1000", "1001", "1002", "1003", "1004", "1005"}
	var last int
	for _, port := range ports {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "192.0.2.1:" + port
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		last = rr.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("6th request from new port: status = %d, want 429", last)
	}
}

func TestContactWindow_FailsOpenOnStoreError(t *testing.T) {
	store := &testutil.MockRateStore{
		AdmitFunc: func(ctx context.Context, clientAddr string) (bool, error) {
			return false, errors.New("redis unreachable")
		},
	}
	handler := ContactWindow(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when the store errors", rr.Code)
	}
}
