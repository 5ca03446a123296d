package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// InquiryRequest is a product inquiry submitted through the website form.
// All fields come from untrusted input.
type InquiryRequest struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,loose_email"`
	Phone       string     `json:"phone" validate:"required"`
	Message     string     `json:"message" validate:"required"`
	ProductName string     `json:"productName" validate:"required"`
	ProductCode string     `json:"productCode" validate:"required"`
	Quantity    FlexString `json:"quantity,omitempty"`
	ProductID   FlexString `json:"productId,omitempty"`
}

// FlexString accepts either a JSON string or a JSON number.
// The product form sends quantity as a number, older pages send it as text.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// WithDefaults fills the optional fields the way the form expects them:
// quantity 1 and an empty product id.
func (r InquiryRequest) WithDefaults() InquiryRequest {
	if r.Quantity == "" {
		r.Quantity = "1"
	}
	return r
}

// OutboundEmail is the composed inquiry email handed to a Mailer.
type OutboundEmail struct {
	FromName    string
	FromAddress string
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// DispatchResult is what a transport reports after accepting a message.
type DispatchResult struct {
	MessageID string
	Transport string
}

// Mailer delivers a composed email through an outbound transport.
type Mailer interface {
	Send(ctx context.Context, msg *OutboundEmail) (*DispatchResult, error)
	Name() string
}

// InquiryNotifier receives a copy of every successfully relayed inquiry.
// Notifications are best effort and never affect the relay outcome.
type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, inquiry *SanitizedInquiry) error
}

// SanitizedInquiry holds the inquiry fields with angle brackets removed.
// Message keeps its newlines; HTML rendering converts them to <br>.
type SanitizedInquiry struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	ProductName string
	ProductCode string
	Quantity    string
	ProductID   string
}

// InquiryUsecase defines the inquiry relay operations
type InquiryUsecase interface {
	// ParseInquiry decodes and validates a raw request body
	ParseInquiry(body []byte) (*InquiryRequest, error)
	// SendInquiry composes the inquiry email and dispatches it
	SendInquiry(ctx context.Context, req *InquiryRequest) (*DispatchResult, error)
}
