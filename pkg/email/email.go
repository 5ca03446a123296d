package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"kamenpro-backend/config"
	"kamenpro-backend/internal/domain"
)

// Composer renders inquiry emails addressed to the business mailbox.
type Composer struct {
	fromName    string
	fromAddress string
	to          string
	tmpl        *template.Template
	contactTmpl *template.Template
}

// inquiryEmailData holds the data for the inquiry HTML template
type inquiryEmailData struct {
	ProductName  string
	ProductCode  string
	Quantity     string
	Name         string
	Email        string
	Phone        string
	MessageLines []string
}

// inquiryEmailTemplate is the HTML layout of an inquiry email. The message is
// rendered line by line so newlines become <br> without marking any visitor
// text as trusted HTML.
const inquiryEmailTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333; border-bottom: 1px solid #eee; padding-bottom: 10px;">Novi upit za proizvod</h2>

  <div style="margin: 20px 0;">
    <p><strong>Proizvod:</strong> {{.ProductName}} ({{.ProductCode}})</p>
    <p><strong>Količina:</strong> {{.Quantity}} m²</p>
  </div>

  <div style="margin: 20px 0;">
    <p><strong>Ime i prezime:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Telefon:</strong> {{.Phone}}</p>
  </div>

  <div style="margin: 20px 0; background-color: #f9f9f9; padding: 15px; border-radius: 5px;">
    <p><strong>Poruka:</strong></p>
    <p>{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  </div>

  <div style="font-size: 12px; margin-top: 30px; color: #777; border-top: 1px solid #eee; padding-top: 10px;">
    <p>Ova poruka je automatski poslata sa web sajta KamenPro.</p>
  </div>
</div>`

type contactEmailData struct {
	Subject      string
	Name         string
	Email        string
	Phone        string
	MessageLines []string
}

const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333; border-bottom: 1px solid #eee; padding-bottom: 10px;">Nova kontakt poruka</h2>

  <div style="margin: 20px 0;">
    <p><strong>Tema:</strong> {{.Subject}}</p>
  </div>

  <div style="margin: 20px 0;">
    <p><strong>Ime i prezime:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Telefon:</strong> {{.Phone}}</p>
  </div>

  <div style="margin: 20px 0; background-color: #f9f9f9; padding: 15px; border-radius: 5px;">
    <p><strong>Poruka:</strong></p>
    <p>{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  </div>

  <div style="font-size: 12px; margin-top: 30px; color: #777; border-top: 1px solid #eee; padding-top: 10px;">
    <p>Ova poruka je automatski poslata sa web sajta KamenPro.</p>
  </div>
</div>`

// NewComposer creates a composer. Empty addresses are reported by the
// transport as a configuration error at send time.
func NewComposer(fromName, fromAddress, to string) *Composer {
	return &Composer{
		fromName:    fromName,
		fromAddress: fromAddress,
		to:          to,
		tmpl:        template.Must(template.New("inquiry").Parse(inquiryEmailTemplate)),
		contactTmpl: template.Must(template.New("contact").Parse(contactEmailTemplate)),
	}
}

// ComposeInquiry builds the outbound email. The HTML body embeds the
// sanitized fields; the plain text body keeps the raw message.
func (c *Composer) ComposeInquiry(s *domain.SanitizedInquiry, rawMessage string) (*domain.OutboundEmail, error) {
	data := inquiryEmailData{
		ProductName:  s.ProductName,
		ProductCode:  s.ProductCode,
		Quantity:     s.Quantity,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		MessageLines: splitLines(s.Message),
	}

	var body bytes.Buffer
	if err := c.tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.OutboundEmail{
		FromName:    c.fromName,
		FromAddress: c.fromAddress,
		To:          c.to,
		ReplyTo:     s.Email,
		Subject:     fmt.Sprintf("Upit za proizvod: %s (%s)", s.ProductName, s.ProductCode),
		HTMLBody:    body.String(),
		TextBody: fmt.Sprintf("Novi upit za proizvod %s (%s) od %s. Email: %s, Telefon: %s. Poruka: %s",
			s.ProductName, s.ProductCode, s.Name, s.Email, s.Phone, rawMessage),
	}, nil
}

// ComposeContact builds the email for a contact page message.
func (c *Composer) ComposeContact(s *domain.SanitizedContact) (*domain.OutboundEmail, error) {
	data := contactEmailData{
		Subject:      s.Subject,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		MessageLines: splitLines(s.Message),
	}

	var body bytes.Buffer
	if err := c.contactTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.OutboundEmail{
		FromName:    c.fromName,
		FromAddress: c.fromAddress,
		To:          c.to,
		ReplyTo:     s.Email,
		Subject:     "Kontakt poruka: " + s.Subject,
		HTMLBody:    body.String(),
		TextBody: fmt.Sprintf("Nova kontakt poruka: %s od %s. Email: %s, Telefon: %s. Poruka: %s",
			s.Subject, s.Name, s.Email, s.Phone, s.Message),
	}, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// Transport is a Mailer that can report missing configuration up front.
type Transport interface {
	domain.Mailer
	Configured() error
}

// NewTransport selects the transport named by MAIL_TRANSPORT.
func NewTransport(cfg *config.Config) (Transport, error) {
	switch cfg.MailTransport {
	case "", "smtp":
		return NewSMTPTransport(SMTPConfigFromEnv(cfg)), nil
	case "brevo":
		return NewBrevoTransport(BrevoConfigFromEnv(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_TRANSPORT %q (want smtp or brevo)", cfg.MailTransport)
	}
}

// SenderAddress returns the From address for the selected transport.
// Hostinger only relays mail sent from the login mailbox.
func SenderAddress(cfg *config.Config) string {
	if cfg.MailTransport == "brevo" {
		return cfg.BrevoSenderEmail
	}
	return cfg.SMTPUser
}
