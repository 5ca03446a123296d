package domain

import "context"

// ContactRequest is a general message from the contact page. Phone and
// subject are optional.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,loose_email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// SanitizedContact holds the contact fields with angle brackets removed and
// the optional fields filled in.
type SanitizedContact struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// ParseContact decodes and validates a raw request body
	ParseContact(body []byte) (*ContactRequest, error)
	// SendContactMessage composes the contact email and dispatches it
	SendContactMessage(ctx context.Context, req *ContactRequest) (*DispatchResult, error)
}
