package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"kamenpro-backend/config"
	_ "kamenpro-backend/docs"
	"kamenpro-backend/internal/catalog"
	v1 "kamenpro-backend/internal/delivery/http/v1"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/internal/usecase"
	"kamenpro-backend/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{"name":"Ana","email":"ana@example.com","phone":"+38765000000","message":"Zanima me <b>cijena</b>","productName":"Rustik","productCode":"RK-01","quantity":3}`

// stubMailer records sent messages and fails when err is set.
type stubMailer struct {
	mu   sync.Mutex
	sent []*domain.OutboundEmail
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg *domain.OutboundEmail) (*domain.DispatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, msg)
	return &domain.DispatchResult{MessageID: "<stub-1@kamenpro.net>", Transport: "stub"}, nil
}

func (m *stubMailer) Name() string { return "stub" }

func (m *stubMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newRouter(mailer domain.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	composer := email.NewComposer("KamenPro Web", "info@kamenpro.net", "info@kamenpro.net")
	return v1.NewRouter(v1.RouterDeps{
		InquiryUC: usecase.NewInquiryUsecase(composer, mailer, nil),
		ContactUC: usecase.NewContactUsecase(composer, mailer),
		Locations: catalog.MustLocations(),
		Config:    &config.Config{SiteBaseURL: "https://kamenpro.net"},
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestSendInquiry(t *testing.T) {
	t.Run("Should relay a valid inquiry", func(t *testing.T) {
		mailer := &stubMailer{}
		w := do(newRouter(mailer), http.MethodPost, "/api/send-inquiry", validBody)

		assert.Equal(t, http.StatusOK, w.Code)
		assertCORS(t, w)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, v1.MsgInquirySent, body["message"])
		assert.Equal(t, "<stub-1@kamenpro.net>", body["messageId"])

		require.Equal(t, 1, mailer.count())
		msg := mailer.sent[0]
		assert.Contains(t, msg.HTMLBody, "Zanima me bcijena/b")
		assert.NotContains(t, msg.HTMLBody, "<b>")
		assert.Contains(t, msg.HTMLBody, "3 m²")
	})

	t.Run("Should reject a missing field without dispatching", func(t *testing.T) {
		for _, field := range []string{"name", "email", "phone", "message", "productName", "productCode"} {
			var payload map[string]any
			require.NoError(t, json.Unmarshal([]byte(validBody), &payload))
			delete(payload, field)
			raw, _ := json.Marshal(payload)

			mailer := &stubMailer{}
			w := do(newRouter(mailer), http.MethodPost, "/api/send-inquiry", string(raw))

			assert.Equal(t, http.StatusBadRequest, w.Code, field)
			assert.Equal(t, usecase.MsgMissingFields, decode(t, w)["error"], field)
			assert.Zero(t, mailer.count(), field)
		}
	})

	t.Run("Should reject malformed emails", func(t *testing.T) {
		for _, addr := range []string{"ana.example.com", "ana@example"} {
			mailer := &stubMailer{}
			w := do(newRouter(mailer), http.MethodPost, "/api/send-inquiry", strings.Replace(validBody, "ana@example.com", addr, 1))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, usecase.MsgInvalidEmail, decode(t, w)["error"])
			assert.Zero(t, mailer.count())
		}
	})

	t.Run("Should reject empty and invalid bodies", func(t *testing.T) {
		r := newRouter(&stubMailer{})

		w := do(r, http.MethodPost, "/api/send-inquiry", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, usecase.MsgEmptyBody, decode(t, w)["error"])

		w = do(r, http.MethodPost, "/api/send-inquiry", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, usecase.MsgInvalidJSON, decode(t, w)["error"])
		assertCORS(t, w)
	})

	t.Run("Should hide transport failures behind a generic message", func(t *testing.T) {
		mailer := &stubMailer{err: errors.New("535 authentication failed for info@kamenpro.net")}
		w := do(newRouter(mailer), http.MethodPost, "/api/send-inquiry", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assertCORS(t, w)
		assert.Equal(t, map[string]any{"error": v1.MsgInquiryFailed}, decode(t, w))
		assert.NotContains(t, w.Body.String(), "535")
	})

	t.Run("Should hide missing configuration", func(t *testing.T) {
		mailer := &stubMailer{err: &domain.ConfigurationError{Transport: "smtp", Missing: []string{"SMTP_PASSWORD"}}}
		w := do(newRouter(mailer), http.MethodPost, "/api/send-inquiry", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, v1.MsgInquiryFailed, decode(t, w)["error"])
		assert.NotContains(t, w.Body.String(), "SMTP_PASSWORD")
	})

	t.Run("Should send a second email on resubmission", func(t *testing.T) {
		mailer := &stubMailer{}
		r := newRouter(mailer)
		do(r, http.MethodPost, "/api/send-inquiry", validBody)
		do(r, http.MethodPost, "/api/send-inquiry", validBody)
		assert.Equal(t, 2, mailer.count())
	})
}

func TestSendInquiryPreflightAndMethods(t *testing.T) {
	r := newRouter(&stubMailer{})

	t.Run("Should answer preflight with an empty 200", func(t *testing.T) {
		for _, body := range []string{"", "{garbage", validBody} {
			w := do(r, http.MethodOptions, "/api/send-inquiry", body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Body.String())
			assertCORS(t, w)
		}
	})

	t.Run("Should reject other methods", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			w := do(r, method, "/api/send-inquiry", validBody)
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
			assert.Equal(t, "Method not allowed", decode(t, w)["error"], method)
			assertCORS(t, w)
		}
	})

	t.Run("Should carry CORS headers on unknown paths", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/unknown", "{}")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assertCORS(t, w)
	})
}

func TestContact(t *testing.T) {
	mailer := &stubMailer{}
	w := do(newRouter(mailer), http.MethodPost, "/api/contact", `{"name":"Marko","email":"marko@example.com","message":"Pozdrav"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, v1.MsgContactSent, decode(t, w)["message"])
	require.Equal(t, 1, mailer.count())
	assert.Equal(t, "Kontakt poruka: "+usecase.DefaultContactSubject, mailer.sent[0].Subject)

	w = do(newRouter(&stubMailer{err: errors.New("boom")}), http.MethodPost, "/api/contact", `{"name":"Marko","email":"marko@example.com","message":"Pozdrav"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, v1.MsgContactFailed, decode(t, w)["error"])
}

func TestLocationSchema(t *testing.T) {
	r := newRouter(&stubMailer{})

	w := do(r, http.MethodGet, "/api/locations/tuzla/schema", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/ld+json; charset=utf-8", w.Header().Get("Content-Type"))
	doc := decode(t, w)
	assert.Equal(t, "LocalBusiness", doc["@type"])
	assert.Equal(t, "https://kamenpro.net/lokacije/tuzla", doc["@id"])

	w = do(r, http.MethodGet, "/api/locations/brcko/breadcrumbs", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BreadcrumbList", decode(t, w)["@type"])

	w = do(r, http.MethodGet, "/api/locations/sarajevo/schema", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, v1.MsgLocationNotFound, decode(t, w)["error"])
}

func TestHealthAndRequestID(t *testing.T) {
	r := newRouter(&stubMailer{})

	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

// stubProducts serves a fixed product list, or err when set.
type stubProducts struct {
	pages []domain.ProductPage
	err   error
}

func (s stubProducts) ListProductPages(context.Context) ([]domain.ProductPage, error) {
	return s.pages, s.err
}

func (s stubProducts) Name() string { return "stub" }

func newProductRouter(products domain.ProductSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	composer := email.NewComposer("KamenPro Web", "info@kamenpro.net", "info@kamenpro.net")
	return v1.NewRouter(v1.RouterDeps{
		InquiryUC: usecase.NewInquiryUsecase(composer, &stubMailer{}, nil),
		Products:  products,
		Config:    &config.Config{SiteBaseURL: "https://kamenpro.net"},
	})
}

func TestProductSchema(t *testing.T) {
	t.Run("Should describe a known product", func(t *testing.T) {
		r := newProductRouter(stubProducts{pages: []domain.ProductPage{
			{ID: "rustik", Name: "Rustik", ImageURL: "/images/rustik.jpg"},
		}})

		w := do(r, http.MethodGet, "/api/products/rustik/schema", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/ld+json; charset=utf-8", w.Header().Get("Content-Type"))
		doc := decode(t, w)
		assert.Equal(t, "Product", doc["@type"])
		assert.Equal(t, "Rustik", doc["name"])
		assert.Equal(t, "https://kamenpro.net/images/rustik.jpg", doc["image"])
		assert.NotContains(t, doc, "offers")
	})

	t.Run("Should return 404 for an unknown product", func(t *testing.T) {
		r := newProductRouter(stubProducts{pages: []domain.ProductPage{{ID: "rustik", Name: "Rustik"}}})
		w := do(r, http.MethodGet, "/api/products/mermer/schema", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, v1.MsgProductNotFound, decode(t, w)["error"])
	})

	t.Run("Should return 503 when the source fails", func(t *testing.T) {
		r := newProductRouter(stubProducts{err: errors.New("db down")})
		w := do(r, http.MethodGet, "/api/products/rustik/schema", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, v1.MsgProductUnavailable, decode(t, w)["error"])
	})

	t.Run("Should not mount the route without a source", func(t *testing.T) {
		w := do(newRouter(&stubMailer{}), http.MethodGet, "/api/products/rustik/schema", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSwaggerDoc(t *testing.T) {
	w := do(newRouter(&stubMailer{}), http.MethodGet, "/api/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, "/api", doc["basePath"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{"/send-inquiry", "/contact", "/locations/{slug}/schema", "/locations/{slug}/breadcrumbs", "/products/{id}/schema"} {
		assert.Contains(t, paths, path)
	}
}
