package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kamenpro-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifierDisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewNotifier("", time.Second))
}

func TestNotifyInquiry(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, time.Second)
	n.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC) }

	err := n.NotifyInquiry(context.Background(), &domain.SanitizedInquiry{
		Name: "Ana", Email: "ana@example.com", Phone: "+38765000000",
		Message: "Zanima me cijena", ProductName: "Rustik", ProductCode: "RK-01", Quantity: "3",
	})
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	e := got.Embeds[0]
	assert.Equal(t, "Upit za proizvod: Rustik (RK-01)", e.Title)
	assert.Equal(t, embedColor, e.Color)
	assert.Equal(t, "2026-10-19T08:30:00Z", e.Timestamp)
	assert.Len(t, e.Fields, 7)
	assert.Equal(t, "3 m²", e.Fields[5].Value)
}

func TestNotifyInquiryStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL, time.Second).NotifyInquiry(context.Background(), &domain.SanitizedInquiry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
