package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"kamenpro-backend/config"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/logger"
)

// SMTPConfig holds the SMTP relay settings (Hostinger in production).
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS; otherwise STARTTLS when the server offers it
	Username string
	Password string
	// LocalName is sent in EHLO. Empty keeps net/smtp's "localhost".
	LocalName string

	ConnectionTimeout time.Duration
	GreetingTimeout   time.Duration
	SocketTimeout     time.Duration
	// TLSConfig overrides the default TLS settings (tests use it for self-signed servers).
	TLSConfig *tls.Config
}

// SMTPConfigFromEnv maps the application config to SMTP settings
func SMTPConfigFromEnv(cfg *config.Config) SMTPConfig {
	return SMTPConfig{
		Host:              cfg.SMTPHost,
		Port:              cfg.SMTPPort,
		Secure:            cfg.SMTPSecure,
		Username:          cfg.SMTPUser,
		Password:          cfg.SMTPPassword,
		ConnectionTimeout: cfg.SMTPConnectionTimeout,
		GreetingTimeout:   cfg.SMTPGreetingTimeout,
		SocketTimeout:     cfg.SMTPSocketTimeout,
	}
}

// Validate reports the missing settings as a ConfigurationError.
func (c SMTPConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if len(missing) > 0 {
		return &domain.ConfigurationError{Transport: "smtp", Missing: missing}
	}
	return nil
}

// SMTPTransport sends each message over its own connection.
type SMTPTransport struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPTransport fills timeout defaults (10s connect, 10s greeting, 15s socket).
// Missing credentials are not an error here; Send reports them.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Port == 0 {
		cfg.Port = 465
	}
	if cfg.ConnectionTimeout <= 0 {
		cfg.ConnectionTimeout = 10 * time.Second
	}
	if cfg.GreetingTimeout <= 0 {
		cfg.GreetingTimeout = 10 * time.Second
	}
	if cfg.SocketTimeout <= 0 {
		cfg.SocketTimeout = 15 * time.Second
	}
	return &SMTPTransport{cfg: cfg, now: time.Now}
}

func (t *SMTPTransport) Name() string {
	return "smtp"
}

// Configured reports whether Send can attempt a connection.
func (t *SMTPTransport) Configured() error {
	return t.cfg.Validate()
}

func (t *SMTPTransport) Send(ctx context.Context, msg *domain.OutboundEmail) (*domain.DispatchResult, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkAddresses(t.Name(), msg); err != nil {
		return nil, err
	}

	messageID := newMessageID(msg.FromAddress)
	raw, err := buildMIME(msg, messageID, t.now())
	if err != nil {
		return nil, &domain.DispatchError{Transport: t.Name(), Err: err}
	}

	logger.Log.Debug("Sending inquiry email via SMTP",
		"host", t.cfg.Host,
		"port", t.cfg.Port,
		"secure", t.cfg.Secure,
		"user", t.cfg.Username,
	)

	if err := t.deliver(ctx, msg.FromAddress, msg.To, raw); err != nil {
		return nil, &domain.DispatchError{Transport: t.Name(), Err: err}
	}

	return &domain.DispatchResult{MessageID: messageID, Transport: t.Name()}, nil
}

func (t *SMTPTransport) deliver(ctx context.Context, from, to string, raw []byte) error {
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))

	dialCtx, cancel := context.WithTimeout(ctx, t.cfg.ConnectionTimeout)
	defer cancel()

	dialer := &net.Dialer{Timeout: t.cfg.ConnectionTimeout}
	conn, err := dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if t.cfg.Secure {
		tlsConn := tls.Client(conn, t.tlsConfig())
		if err := tlsConn.HandshakeContext(dialCtx); err != nil {
			return fmt.Errorf("TLS handshake with %s failed: %w", addr, err)
		}
		conn = tlsConn
	}

	// Abort the whole exchange as soon as the caller gives up.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	// smtp.NewClient reads the 220 greeting
	if err := t.extendDeadline(ctx, conn, t.cfg.GreetingTimeout); err != nil {
		return err
	}
	c, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return fmt.Errorf("SMTP greeting failed: %w", err)
	}
	defer c.Close()

	steps := []func() error{
		func() error {
			if t.cfg.LocalName == "" {
				return nil
			}
			return c.Hello(t.cfg.LocalName)
		},
		func() error {
			if t.cfg.Secure {
				return nil
			}
			if ok, _ := c.Extension("STARTTLS"); !ok {
				return nil
			}
			return c.StartTLS(t.tlsConfig())
		},
		func() error {
			if ok, _ := c.Extension("AUTH"); !ok {
				return errors.New("smtp: server doesn't support AUTH")
			}
			return c.Auth(smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host))
		},
		func() error { return c.Mail(from) },
		func() error { return c.Rcpt(to) },
		func() error {
			w, err := c.Data()
			if err != nil {
				return err
			}
			if _, err := w.Write(raw); err != nil {
				return err
			}
			return w.Close()
		},
		c.Quit,
	}

	for _, step := range steps {
		if err := t.extendDeadline(ctx, conn, t.cfg.SocketTimeout); err != nil {
			return err
		}
		if err := step(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
	}
	return nil
}

// extendDeadline sets an idle deadline, never past the context deadline.
func (t *SMTPTransport) extendDeadline(ctx context.Context, conn net.Conn, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline := time.Now().Add(d)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	return conn.SetDeadline(deadline)
}

func (t *SMTPTransport) tlsConfig() *tls.Config {
	if t.cfg.TLSConfig != nil {
		return t.cfg.TLSConfig.Clone()
	}
	return &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}
}
