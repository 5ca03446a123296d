package usecase

import (
	"context"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/email"
	"kamenpro-backend/pkg/logger"
	"kamenpro-backend/pkg/metrics"
	"kamenpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// SanitizeInquiry returns the HTML-safe copy of an inquiry. Call it on a
// request that already passed validation and WithDefaults.
func SanitizeInquiry(req *domain.InquiryRequest) *domain.SanitizedInquiry {
	return &domain.SanitizedInquiry{
		Name:        StripAngleBrackets(req.Name),
		Email:       StripAngleBrackets(req.Email),
		Phone:       StripAngleBrackets(req.Phone),
		Message:     StripAngleBrackets(req.Message),
		ProductName: StripAngleBrackets(req.ProductName),
		ProductCode: StripAngleBrackets(req.ProductCode),
		Quantity:    StripAngleBrackets(string(req.Quantity)),
		ProductID:   StripAngleBrackets(string(req.ProductID)),
	}
}

type inquiryUsecase struct {
	validate *validator.Validate
	composer *email.Composer
	mailer   domain.Mailer
	notifier domain.InquiryNotifier
}

// NewInquiryUsecase wires the relay. notifier may be nil.
func NewInquiryUsecase(composer *email.Composer, mailer domain.Mailer, notifier domain.InquiryNotifier) domain.InquiryUsecase {
	return &inquiryUsecase{
		validate: validation.New(),
		composer: composer,
		mailer:   mailer,
		notifier: notifier,
	}
}

// ParseInquiry decodes the request body and applies the form's rules.
func (uc *inquiryUsecase) ParseInquiry(body []byte) (*domain.InquiryRequest, error) {
	req, err := uc.parse(body)
	if err != nil {
		metrics.Inquiries.WithLabelValues("rejected").Inc()
		return nil, err
	}
	return req, nil
}

func (uc *inquiryUsecase) parse(body []byte) (*domain.InquiryRequest, error) {
	var req domain.InquiryRequest
	if err := decodeForm(body, &req); err != nil {
		return nil, err
	}
	if err := checkForm(uc.validate, &req); err != nil {
		return nil, err
	}

	out := req.WithDefaults()
	return &out, nil
}

// SendInquiry validates, composes and dispatches one inquiry email. It is
// never retried and never deduplicated: every call sends a message.
func (uc *inquiryUsecase) SendInquiry(ctx context.Context, req *domain.InquiryRequest) (*domain.DispatchResult, error) {
	if req == nil {
		metrics.Inquiries.WithLabelValues("rejected").Inc()
		return nil, &domain.ValidationError{Message: MsgEmptyBody}
	}
	if err := checkForm(uc.validate, req); err != nil {
		metrics.Inquiries.WithLabelValues("rejected").Inc()
		return nil, err
	}

	r := req.WithDefaults()
	safe := SanitizeInquiry(&r)

	logger.Log.Info("Inquiry received",
		"product_name", safe.ProductName,
		"product_code", safe.ProductCode,
		"product_id", safe.ProductID,
		"quantity", safe.Quantity,
	)

	msg, err := uc.composer.ComposeInquiry(safe, r.Message)
	if err != nil {
		metrics.Inquiries.WithLabelValues("failed").Inc()
		return nil, &domain.DispatchError{Transport: uc.mailer.Name(), Err: err}
	}

	res, outcome, err := deliver(ctx, uc.mailer, msg)
	metrics.Inquiries.WithLabelValues(outcome).Inc()
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Inquiry email sent", "transport", res.Transport, "message_id", res.MessageID)

	uc.notify(ctx, safe)
	return res, nil
}

// notify is best effort; a failing webhook never changes the relay outcome.
func (uc *inquiryUsecase) notify(ctx context.Context, safe *domain.SanitizedInquiry) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyInquiry(ctx, safe); err != nil {
		metrics.WebhookNotifications.WithLabelValues("error").Inc()
		logger.Log.Warn("Error sending to webhook", "error", err)
		return
	}
	metrics.WebhookNotifications.WithLabelValues("ok").Inc()
}
