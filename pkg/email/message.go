package email

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"kamenpro-backend/internal/domain"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// newMessageID returns an RFC 5322 Message-ID on the sender's domain.
func newMessageID(fromAddress string) string {
	host := "kamenpro.net"
	if i := strings.LastIndex(fromAddress, "@"); i >= 0 && i < len(fromAddress)-1 {
		host = fromAddress[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}

// buildMIME renders msg as a multipart/alternative message (text first, HTML
// preferred) carrying the given Message-ID.
func buildMIME(msg *domain.OutboundEmail, messageID string, now time.Time) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetDateHeader("Date", now)
	m.SetBody("text/plain", msg.TextBody)
	m.AddAlternative("text/html", msg.HTMLBody)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return buf.Bytes(), nil
}

// checkAddresses reports missing sender/recipient settings.
func checkAddresses(transport string, msg *domain.OutboundEmail) error {
	var missing []string
	if msg.FromAddress == "" {
		missing = append(missing, "sender address")
	}
	if msg.To == "" {
		missing = append(missing, "CONTACT_EMAIL_TO")
	}
	if len(missing) > 0 {
		return &domain.ConfigurationError{Transport: transport, Missing: missing}
	}
	return nil
}
