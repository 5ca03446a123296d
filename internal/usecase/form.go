package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/logger"
	"kamenpro-backend/pkg/metrics"
	"kamenpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Visitor-facing validation messages
const (
	MsgEmptyBody     = "Nema podataka u zahtevu."
	MsgInvalidJSON   = "Invalid JSON in request body"
	MsgMissingFields = "Svi potrebni podaci moraju biti popunjeni."
	MsgInvalidEmail  = "Email adresa nije ispravna."
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// StripAngleBrackets removes "<" and ">" so visitor text cannot open or
// close markup inside the HTML email. Applying it twice changes nothing.
func StripAngleBrackets(s string) string {
	return angleBrackets.Replace(s)
}

// decodeForm reads a website form body into dst.
func decodeForm(body []byte, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return &domain.ValidationError{Message: MsgEmptyBody}
	}

	// Decode into a generic object first so "{}" and "null" read as empty
	// and non-object bodies are rejected as invalid JSON.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return &domain.ValidationError{Message: MsgInvalidJSON}
	}
	if len(fields) == 0 {
		return &domain.ValidationError{Message: MsgEmptyBody}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		// A field of the wrong JSON type counts as not filled in
		return &domain.ValidationError{Message: MsgMissingFields}
	}
	return nil
}

// checkForm runs the struct rules. Missing fields are reported before a bad
// email address.
func checkForm(validate *validator.Validate, form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	if missing := validation.FieldsWithTag(err, "required"); len(missing) > 0 {
		logger.Log.Info("Validation failed: Missing required fields", "fields", missing)
		return &domain.ValidationError{Message: MsgMissingFields, Fields: missing}
	}
	if invalid := validation.FieldsWithTag(err, "loose_email"); len(invalid) > 0 {
		logger.Log.Info("Validation failed: Invalid email format")
		return &domain.ValidationError{Message: MsgInvalidEmail, Fields: invalid}
	}
	return &domain.ValidationError{Message: strings.Join(validation.FormatValidationErrors(err), "; ")}
}

// deliver hands msg to the mailer once. outcome is "sent", "misconfigured"
// or "failed"; any failure other than a ConfigurationError is returned as a
// DispatchError.
func deliver(ctx context.Context, mailer domain.Mailer, msg *domain.OutboundEmail) (*domain.DispatchResult, string, error) {
	res, err := mailer.Send(ctx, msg)
	if err == nil {
		metrics.MailDispatch.WithLabelValues(res.Transport, "ok").Inc()
		return res, "sent", nil
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return nil, "misconfigured", err
	}

	metrics.MailDispatch.WithLabelValues(mailer.Name(), "error").Inc()
	var dispatchErr *domain.DispatchError
	if !errors.As(err, &dispatchErr) {
		err = &domain.DispatchError{Transport: mailer.Name(), Err: err}
	}
	return nil, "failed", err
}
