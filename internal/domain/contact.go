package domain

import "errors"

var (
	ErrMissingRequiredField = errors.New("name, email and message are required")
	ErrInvalidEmailFormat   = errors.New("invalid email address")
	ErrMailNotConfigured    = errors.New("mail transport not configured")
	ErrDispatchFailed       = errors.New("mail dispatch failed")
)

// ContactSubmission is one contact-form submission. It exists only for the
// duration of the request that carries it and is never persisted.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// SanitizedSubmission mirrors ContactSubmission with every field HTML-escaped.
// Produced immediately before any field is interpolated into an HTML body.
type SanitizedSubmission struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}
