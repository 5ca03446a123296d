package usecase

import (
	"context"
	"strings"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/email"
	"kamenpro-backend/pkg/logger"
	"kamenpro-backend/pkg/metrics"
	"kamenpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Placeholders for the optional contact fields
const (
	DefaultContactSubject = "Opšti upit"
	DefaultContactPhone   = "-"
)

type contactUsecase struct {
	validate *validator.Validate
	composer *email.Composer
	mailer   domain.Mailer
}

func NewContactUsecase(composer *email.Composer, mailer domain.Mailer) domain.ContactUsecase {
	return &contactUsecase{
		validate: validation.New(),
		composer: composer,
		mailer:   mailer,
	}
}

// ParseContact decodes the request body and applies the contact form's rules.
func (uc *contactUsecase) ParseContact(body []byte) (*domain.ContactRequest, error) {
	var req domain.ContactRequest
	if err := decodeForm(body, &req); err != nil {
		metrics.ContactMessages.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if err := checkForm(uc.validate, &req); err != nil {
		metrics.ContactMessages.WithLabelValues("rejected").Inc()
		return nil, err
	}
	return &req, nil
}

// SanitizeContact strips angle brackets and fills the optional fields.
func SanitizeContact(req *domain.ContactRequest) *domain.SanitizedContact {
	s := &domain.SanitizedContact{
		Name:    StripAngleBrackets(req.Name),
		Email:   StripAngleBrackets(req.Email),
		Phone:   StripAngleBrackets(strings.TrimSpace(req.Phone)),
		Subject: StripAngleBrackets(strings.TrimSpace(req.Subject)),
		Message: StripAngleBrackets(req.Message),
	}
	if s.Phone == "" {
		s.Phone = DefaultContactPhone
	}
	if s.Subject == "" {
		s.Subject = DefaultContactSubject
	}
	return s
}

// SendContactMessage validates and dispatches one contact email.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.DispatchResult, error) {
	if req == nil {
		metrics.ContactMessages.WithLabelValues("rejected").Inc()
		return nil, &domain.ValidationError{Message: MsgEmptyBody}
	}
	if err := checkForm(uc.validate, req); err != nil {
		metrics.ContactMessages.WithLabelValues("rejected").Inc()
		return nil, err
	}

	safe := SanitizeContact(req)
	logger.Log.Info("Contact message received", "subject", safe.Subject)

	msg, err := uc.composer.ComposeContact(safe)
	if err != nil {
		metrics.ContactMessages.WithLabelValues("failed").Inc()
		return nil, &domain.DispatchError{Transport: uc.mailer.Name(), Err: err}
	}

	res, outcome, err := deliver(ctx, uc.mailer, msg)
	metrics.ContactMessages.WithLabelValues(outcome).Inc()
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Contact email sent", "transport", res.Transport, "message_id", res.MessageID)
	return res, nil
}
