package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"clearview-web/internal/domain"
	"clearview-web/internal/observability"
)

// CSRF validates one-time anti-forgery tokens for state-changing requests.
//
// Flow:
// 1. Skip for safe HTTP methods (GET, HEAD, OPTIONS)
// 2. Extract the token from the X-CSRF-Token header
// 3. Validate against the token store; validation consumes the token
// 4. Log a security event and reject with 403 Forbidden on any failure
func CSRF(store domain.TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get("X-CSRF-Token")

			if err := store.Validate(r.Context(), token); err != nil {
				reason := csrfFailureReason(err)
				logCSRFFailure(r, reason)
				observability.CSRFFailuresTotal.WithLabelValues(reason).Inc()
				writeError(w, http.StatusForbidden, "Invalid or missing CSRF token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isSafeMethod returns true if the HTTP method is idempotent and cacheable.
func isSafeMethod(method string) bool {
	return method == http.MethodGet ||
		method == http.MethodHead ||
		method == http.MethodOptions
}

func csrfFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired_token"
	case errors.Is(err, domain.ErrUnknownToken):
		return "unknown_token"
	default:
		return "store_error"
	}
}

// logCSRFFailure logs a security event when CSRF validation fails.
func logCSRFFailure(r *http.Request, reason string) {
	slog.Warn("CSRF validation failed",
		slog.String("reason", reason),
		slog.String("method", r.Method),
		slog.String("path", r.RequestURI),
		slog.String("remote_addr", r.RemoteAddr),
	)
}
