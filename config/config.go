package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Mail transport selection: "smtp" or "brevo"
	MailTransport string
	// SMTP Configuration (Hostinger)
	SMTPHost              string
	SMTPPort              int
	SMTPSecure            bool // Implicit TLS (port 465). STARTTLS is used when false and offered by the server.
	SMTPUser              string
	SMTPPassword          string
	SMTPFromName          string
	ContactEmailTo        string
	SMTPConnectionTimeout time.Duration
	SMTPGreetingTimeout   time.Duration
	SMTPSocketTimeout     time.Duration
	// Brevo transactional API
	BrevoAPIKey      string
	BrevoAPIURL      string
	BrevoSenderEmail string
	// Optional chat webhook notified after every relayed inquiry
	WebhookURL string
	// Sitemap
	SiteBaseURL   string
	SitemapOutput string
	ProductsFile  string
	DBUrl         string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects real environment variables
	_ = godotenv.Load()

	smtpPort := getEnvInt("SMTP_PORT", 465)

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		MailTransport: strings.ToLower(getEnv("MAIL_TRANSPORT", "smtp")),
		// SMTP Configuration
		SMTPHost:              getEnv("SMTP_HOST", ""),
		SMTPPort:              smtpPort,
		SMTPSecure:            getEnvBool("SMTP_SECURE", smtpPort == 465),
		SMTPUser:              getEnv("SMTP_USER", ""),
		SMTPPassword:          getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:          getEnv("SMTP_FROM_NAME", "KamenPro Web"),
		ContactEmailTo:        getEnv("CONTACT_EMAIL_TO", ""),
		SMTPConnectionTimeout: getEnvDuration("SMTP_CONNECTION_TIMEOUT", 10*time.Second),
		SMTPGreetingTimeout:   getEnvDuration("SMTP_GREETING_TIMEOUT", 10*time.Second),
		SMTPSocketTimeout:     getEnvDuration("SMTP_SOCKET_TIMEOUT", 15*time.Second),
		// Brevo
		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoAPIURL:      strings.TrimRight(getEnv("BREVO_API_URL", "https://api.brevo.com/v3"), "/"),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", "info@kamenpro.net"),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),
		// Strip the trailing slash so paths can be appended as "/o-nama"
		SiteBaseURL:   strings.TrimRight(getEnv("SITE_BASE_URL", "https://kamenpro.net"), "/"),
		SitemapOutput: getEnv("SITEMAP_OUTPUT", "public/sitemap.xml"),
		ProductsFile:  getEnv("PRODUCTS_FILE", ""),
		DBUrl:         getEnv("DATABASE_URL", ""),
	}

	// Inquiries go to the sending mailbox unless a separate inbox is set
	if cfg.ContactEmailTo == "" {
		cfg.ContactEmailTo = cfg.SMTPUser
		if cfg.MailTransport == "brevo" {
			cfg.ContactEmailTo = cfg.BrevoSenderEmail
		}
	}

	if cfg.MailTransport == "smtp" && cfg.SMTPHost == "" {
		log.Println("WARNING: SMTP_HOST is missing. Inquiry form will answer with 500 until it is configured.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("15s") or plain milliseconds ("15000")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
