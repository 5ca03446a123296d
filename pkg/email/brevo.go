package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kamenpro-backend/config"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/logger"
)

// BrevoConfig holds the Brevo transactional email API settings.
type BrevoConfig struct {
	APIKey  string
	BaseURL string // e.g. https://api.brevo.com/v3
	Timeout time.Duration
}

// BrevoConfigFromEnv maps the application config to Brevo settings
func BrevoConfigFromEnv(cfg *config.Config) BrevoConfig {
	return BrevoConfig{
		APIKey:  cfg.BrevoAPIKey,
		BaseURL: cfg.BrevoAPIURL,
		Timeout: cfg.SMTPSocketTimeout,
	}
}

func (c BrevoConfig) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "BREVO_API_KEY")
	}
	if c.BaseURL == "" {
		missing = append(missing, "BREVO_API_URL")
	}
	if len(missing) > 0 {
		return &domain.ConfigurationError{Transport: "brevo", Missing: missing}
	}
	return nil
}

// BrevoTransport posts messages to POST {BaseURL}/smtp/email.
type BrevoTransport struct {
	cfg BrevoConfig
}

func NewBrevoTransport(cfg BrevoConfig) *BrevoTransport {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &BrevoTransport{cfg: cfg}
}

func (t *BrevoTransport) Name() string {
	return "brevo"
}

func (t *BrevoTransport) Configured() error {
	return t.cfg.Validate()
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoRequest struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	ReplyTo     *brevoContact  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func (t *BrevoTransport) Send(ctx context.Context, msg *domain.OutboundEmail) (*domain.DispatchResult, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkAddresses(t.Name(), msg); err != nil {
		return nil, err
	}

	payload := brevoRequest{
		Sender:      brevoContact{Email: msg.FromAddress, Name: msg.FromName},
		To:          []brevoContact{{Email: msg.To, Name: "KamenPro Team"}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
		TextContent: msg.TextBody,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &brevoContact{Email: msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.DispatchError{Transport: t.Name(), Err: err}
	}

	resp, err := t.post(ctx, body)
	if err != nil {
		return nil, &domain.DispatchError{Transport: t.Name(), Err: err}
	}

	logger.Log.Debug("Brevo accepted inquiry email", "message_id", resp.MessageID)
	return &domain.DispatchResult{MessageID: resp.MessageID, Transport: t.Name()}, nil
}

func (t *BrevoTransport) post(ctx context.Context, body []byte) (*brevoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.BaseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("api-key", t.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// One connection per send, nothing pooled between inquiries
	client := &http.Client{
		Timeout:   t.cfg.Timeout,
		Transport: &http.Transport{DisableKeepAlives: true, Proxy: http.ProxyFromEnvironment},
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Error bodies are decoded best effort; the status code decides
	var out brevoResponse
	decodeErr := json.Unmarshal(data, &out)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("API error %d: %s %s", res.StatusCode, out.Code, out.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode API response %d: %w", res.StatusCode, decodeErr)
	}
	if out.MessageID == "" {
		return nil, fmt.Errorf("API response %d carried no messageId", res.StatusCode)
	}
	return &out, nil
}
