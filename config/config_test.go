package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "MAIL_TRANSPORT", "SMTP_HOST", "SMTP_PORT", "SMTP_SECURE", "SMTP_USER",
		"SMTP_PASSWORD", "CONTACT_EMAIL_TO", "SMTP_SOCKET_TIMEOUT", "SITE_BASE_URL",
		"BREVO_SENDER_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "info@kamenpro.net")
	t.Setenv("SITE_BASE_URL", "https://kamenpro.net/")
	t.Setenv("MAIL_TRANSPORT", "SMTP")
	t.Setenv("SMTP_SOCKET_TIMEOUT", "15s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "smtp", cfg.MailTransport)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.True(t, cfg.SMTPSecure, "port 465 implies implicit TLS")
	assert.Equal(t, "info@kamenpro.net", cfg.ContactEmailTo)
	assert.Equal(t, "https://kamenpro.net", cfg.SiteBaseURL)
	assert.Equal(t, 15*time.Second, cfg.SMTPSocketTimeout)
}

func TestContactEmailToForBrevo(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_TRANSPORT", "brevo")
	t.Setenv("BREVO_SENDER_EMAIL", "info@kamenpro.net")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info@kamenpro.net", cfg.ContactEmailTo)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "587")
	t.Setenv("TEST_BAD_INT", "abc")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_MS", "2500")
	t.Setenv("TEST_DURATION", "10s")

	assert.Equal(t, 587, getEnvInt("TEST_INT", 465))
	assert.Equal(t, 465, getEnvInt("TEST_BAD_INT", 465))
	assert.Equal(t, 465, getEnvInt("TEST_UNSET_INT", 465))
	assert.True(t, getEnvBool("TEST_BOOL", false))
	assert.Equal(t, 2500*time.Millisecond, getEnvDuration("TEST_MS", time.Second))
	assert.Equal(t, 10*time.Second, getEnvDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("TEST_UNSET_DURATION", time.Second))
}
