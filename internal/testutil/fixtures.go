package testutil

import "clearview-web/internal/domain"

// ValidSubmission returns a submission that passes validation.
func ValidSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "I would like to know more about your services.",
	}
}

// FullSubmission returns a submission with every optional field present.
func FullSubmission() domain.ContactSubmission {
	sub := ValidSubmission()
	sub.Phone = "+1 555 0100"
	sub.Company = "Example Corp"
	sub.Service = "Consulting"
	return sub
}
