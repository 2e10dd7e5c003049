package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"clearview-web/internal/domain"
	"clearview-web/internal/observability"
	"clearview-web/internal/service"
)

// ContactHandler handles the contact-form submission endpoint.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactResponse is the uniform response body for the contact endpoint.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles a contact-form submission. The request has already passed
// rate-limit admission and CSRF validation by the time it reaches this
// handler; field validation and dispatch happen in the service.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		observability.ContactSubmissionsTotal.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		status, message := submitErrorStatus(err)
		if status == http.StatusBadRequest {
			observability.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		}
		observability.FromContext(r.Context()).Warn("contact submission rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, ContactResponse{Success: false, Message: message})
		return
	}

	writeJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Message sent successfully!",
	})
}

// submitErrorStatus maps the service error taxonomy onto HTTP statuses.
// Raw error details never reach the client.
func submitErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidEmailFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMailNotConfigured):
		return http.StatusServiceUnavailable,
			"Contact form is temporarily unavailable"
	case errors.Is(err, domain.ErrDispatchFailed):
		return http.StatusInternalServerError,
			"Failed to send message. Please try again later."
	default:
		return http.StatusInternalServerError,
			"Failed to send message. Please try again later."
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
