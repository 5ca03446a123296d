// Package webhook posts new inquiries to a chat webhook (Discord or Slack
// compatible embeds).
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kamenpro-backend/internal/domain"
)

// amber
const embedColor = 16766720

type Notifier struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewNotifier returns nil when url is empty so callers can skip notification.
func NewNotifier(url string, timeout time.Duration) *Notifier {
	if url == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Timestamp string       `json:"timestamp"`
}

type payload struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds"`
}

func (n *Notifier) buildPayload(in *domain.SanitizedInquiry) payload {
	return payload{
		Content: "**Nova kontakt poruka sa web sajta**",
		Embeds: []embed{{
			Title: fmt.Sprintf("Upit za proizvod: %s (%s)", in.ProductName, in.ProductCode),
			Color: embedColor,
			Fields: []embedField{
				{Name: "Ime i prezime", Value: in.Name, Inline: true},
				{Name: "Email", Value: in.Email, Inline: true},
				{Name: "Telefon", Value: in.Phone, Inline: true},
				{Name: "Proizvod", Value: in.ProductName, Inline: true},
				{Name: "Šifra", Value: in.ProductCode, Inline: true},
				{Name: "Količina", Value: in.Quantity + " m²", Inline: true},
				{Name: "Poruka", Value: in.Message},
			},
			Timestamp: n.now().UTC().Format(time.RFC3339),
		}},
	}
}

// NotifyInquiry posts the embed. Any non-2xx answer is an error.
func (n *Notifier) NotifyInquiry(ctx context.Context, in *domain.SanitizedInquiry) error {
	body, err := json.Marshal(n.buildPayload(in))
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return fmt.Errorf("webhook request failed with status code %d: %s", res.StatusCode, data)
	}
	return nil
}
