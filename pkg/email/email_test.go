package email_test

import (
	"strings"
	"testing"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInquiry() *domain.SanitizedInquiry {
	return &domain.SanitizedInquiry{
		Name:        "Ana",
		Email:       "ana@example.com",
		Phone:       "+38765000000",
		Message:     "Zanima me bcijena/b\nHvala",
		ProductName: "Rustik",
		ProductCode: "RK-01",
		Quantity:    "12",
	}
}

func TestComposeInquiry(t *testing.T) {
	c := email.NewComposer("KamenPro Web", "info@kamenpro.net", "info@kamenpro.net")

	msg, err := c.ComposeInquiry(sampleInquiry(), "Zanima me <b>cijena</b>\nHvala")
	require.NoError(t, err)

	assert.Equal(t, "KamenPro Web", msg.FromName)
	assert.Equal(t, "info@kamenpro.net", msg.FromAddress)
	assert.Equal(t, "info@kamenpro.net", msg.To)
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
	assert.Equal(t, "Upit za proizvod: Rustik (RK-01)", msg.Subject)

	assert.Contains(t, msg.HTMLBody, "Zanima me bcijena/b<br>Hvala")
	assert.Contains(t, msg.HTMLBody, "<strong>Proizvod:</strong> Rustik (RK-01)")
	assert.Contains(t, msg.HTMLBody, "12 m²")
	assert.NotContains(t, msg.HTMLBody, "<b>")

	// Plain text keeps the raw message including newlines
	assert.Equal(t,
		"Novi upit za proizvod Rustik (RK-01) od Ana. Email: ana@example.com, Telefon: +38765000000. Poruka: Zanima me <b>cijena</b>\nHvala",
		msg.TextBody)
}

func TestComposeInquiryEscapesRemainingMarkup(t *testing.T) {
	c := email.NewComposer("KamenPro Web", "info@kamenpro.net", "info@kamenpro.net")
	in := sampleInquiry()
	in.Name = `Ana "Kamen" & Co`

	msg, err := c.ComposeInquiry(in, in.Message)
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "Ana &#34;Kamen&#34; &amp; Co")
}

func TestComposeInquiryCRLF(t *testing.T) {
	c := email.NewComposer("", "a@b.c", "a@b.c")
	in := sampleInquiry()
	in.Message = "prvi\r\ndrugi"

	msg, err := c.ComposeInquiry(in, in.Message)
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "prvi<br>drugi")
	assert.False(t, strings.Contains(msg.HTMLBody, "\r"))
}

func TestComposeContact(t *testing.T) {
	c := email.NewComposer("KamenPro Web", "info@kamenpro.net", "info@kamenpro.net")

	msg, err := c.ComposeContact(&domain.SanitizedContact{
		Name:    "Marko",
		Email:   "marko@example.com",
		Phone:   "-",
		Subject: "Montaža",
		Message: "Da li radite montažu?\nHvala",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kontakt poruka: Montaža", msg.Subject)
	assert.Equal(t, "marko@example.com", msg.ReplyTo)
	assert.Contains(t, msg.HTMLBody, "<strong>Tema:</strong> Montaža")
	assert.Contains(t, msg.HTMLBody, "Da li radite montažu?<br>Hvala")
	assert.Equal(t,
		"Nova kontakt poruka: Montaža od Marko. Email: marko@example.com, Telefon: -. Poruka: Da li radite montažu?\nHvala",
		msg.TextBody)
}
