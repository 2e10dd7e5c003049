package handler

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clearview-web/internal/domain"
	"clearview-web/internal/middleware"
	"clearview-web/internal/service"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Tokens         domain.TokenStore
	Window         domain.RateStore
	Contact        *service.ContactService
	GlobalLimiter  *middleware.RateLimiter // optional whole-API gate
	AllowedOrigins []string
	StaticDir      string
}

// NewRouter builds the full HTTP surface. The middleware order on the
// contact endpoint is a contract: rate-limit admission runs before CSRF
// validation, which runs before the handler ever parses the body, so
// malformed payloads from disallowed clients never reach the validator or
// the mail path.
func NewRouter(deps RouterDeps) http.Handler {
	tokenHandler := NewTokenHandler(deps.Tokens)
	contactHandler := NewContactHandler(deps.Contact)

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.Metrics())
	if deps.GlobalLimiter != nil {
		r.Use(deps.GlobalLimiter.Middleware())
	}

	r.Get("/api/csrf-token", tokenHandler.Issue)
	r.Get("/api/health", Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContactWindow(deps.Window))
		r.Use(middleware.CSRF(deps.Tokens))
		r.Post("/api/contact", contactHandler.Submit)
	})

	staticDir := deps.StaticDir
	if staticDir == "" {
		staticDir = "./static"
	}
	for route, file := range map[string]string{
		"/":         "index.html",
		"/services": "services.html",
		"/about":    "about.html",
		"/contact":  "contact.html",
	} {
		page := filepath.Join(staticDir, file)
		r.Get(route, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, page)
		})
	}

	// Block all other routes to prevent access to files we're not explicitly serving
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	return r
}
