package middleware

import (
	"log/slog"
	"net/http"

	"clearview-web/internal/domain"
	"clearview-web/internal/observability"
)

// ContactWindow gates the contact endpoint on the per-address submission
// window (5 admits per 15 minutes by default). It runs before everything else
// on the route: a rejected client's body never reaches CSRF or field
// validation.
//
// A store error (e.g. redis unreachable) fails open: the request proceeds and
// the error is logged. The window is an abuse control, not a correctness
// guarantee worth taking the site down for.
func ContactWindow(store domain.RateStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := store.Admit(r.Context(), ClientAddr(r))
			if err != nil {
				slog.Error("rate store error, admitting request",
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				observability.RateLimitRejectionsTotal.WithLabelValues("contact").Inc()
				slog.Warn("contact window exceeded",
					slog.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusTooManyRequests,
					"Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
