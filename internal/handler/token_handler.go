package handler

import (
	"log/slog"
	"net/http"

	"clearview-web/internal/domain"
	"clearview-web/internal/middleware"
	"clearview-web/internal/observability"
)

// TokenHandler issues one-time CSRF tokens to pages the server itself served.
type TokenHandler struct {
	tokens domain.TokenStore
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokens domain.TokenStore) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// TokenResponse carries a freshly issued token
type TokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// Issue generates a token bound to the requesting client address.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokens.Issue(r.Context(), middleware.ClientAddr(r))
	if err != nil {
		observability.FromContext(r.Context()).Error("token issuance failed",
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ContactResponse{
			Success: false,
			Message: "Failed to issue token",
		})
		return
	}

	observability.TokensIssuedTotal.Inc()
	writeJSON(w, http.StatusOK, TokenResponse{CSRFToken: token})
}
