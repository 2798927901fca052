package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	LogLevel string
	TimeZone string

	// WhatsApp Cloud API (webhook + submission mirror)
	VerifyToken               string
	AppSecret                 string
	WhatsAppToken             string
	PhoneNumberID             string
	WhatsAppBusinessAccountID string
	WhatsAppAPIBase           string
	NotifyNumber              string

	// Ledger
	DBDriver    string // sqlite, postgres, none
	DBPath      string
	DatabaseURL string

	// Channels
	SubmissionEndpoint     string
	StaggerDelay           time.Duration
	EnquiryMailTo          string
	PassportMailTo         string
	EnquiryWhatsAppNumber  string
	PassportWhatsAppNumber string
	ContactWhatsAppNumber  string
	ContactEmail           string
	ContactPhone           string

	// Back office basic auth; both empty leaves the back office unmounted
	AdminUser     string
	AdminPassword string

	// Chat
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	TypingDelay   bool
	SessionTTL    time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("[CONFIG] no .env file loaded, using process environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		TimeZone: getEnv("TIME_ZONE", "Asia/Kolkata"),

		VerifyToken:               getEnv("VERIFY_TOKEN", ""),
		AppSecret:                 getEnv("WHATSAPP_APP_SECRET", ""),
		WhatsAppToken:             getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:             getEnv("PHONE_NUMBER_ID", ""),
		WhatsAppBusinessAccountID: getEnv("WABA_ID", ""),
		WhatsAppAPIBase:           getEnv("WHATSAPP_API_BASE", "https://graph.facebook.com/v19.0"),
		NotifyNumber:              getEnv("NOTIFY_NUMBER", ""),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", "./visacrony.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		SubmissionEndpoint:     getEnv("SUBMISSION_ENDPOINT", ""),
		StaggerDelay:           getEnvDuration("STAGGER_DELAY", 500*time.Millisecond),
		EnquiryMailTo:          getEnv("ENQUIRY_MAIL_TO", "visacrony@gmail.com"),
		PassportMailTo:         getEnv("PASSPORT_MAIL_TO", "sohithnr29@gmail.com"),
		EnquiryWhatsAppNumber:  getEnv("ENQUIRY_WHATSAPP_NUMBER", "919113895297"),
		PassportWhatsAppNumber: getEnv("PASSPORT_WHATSAPP_NUMBER", "917337728776"),
		ContactWhatsAppNumber:  getEnv("CONTACT_WHATSAPP_NUMBER", "919876543210"),
		ContactEmail:           getEnv("CONTACT_EMAIL", "info@visacrony.in"),
		ContactPhone:           getEnv("CONTACT_PHONE", "+91 98765 43210"),

		AdminUser:     getEnv("ADMIN_USER", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		TypingDelay:   getEnvBool("TYPING_DELAY", true),
		SessionTTL:    getEnvDuration("SESSION_TTL", 2*time.Hour),
	}
}

// Validate reports the first setting that would keep the server from starting.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH cannot be empty when DB_DRIVER=sqlite")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL cannot be empty when DB_DRIVER=postgres")
		}
	case "none":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite, postgres or none, got %q", c.DBDriver)
	}
	if c.StaggerDelay < 0 {
		return fmt.Errorf("STAGGER_DELAY must be >= 0")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if (c.AdminUser == "") != (c.AdminPassword == "") {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASSWORD must be set together")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Location resolves TimeZone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		logrus.Warnf("[CONFIG] unknown TIME_ZONE %q, using UTC", c.TimeZone)
		return time.UTC
	}
	return loc
}

// WhatsAppConfigured reports whether the Cloud API credentials are present.
func (c *Config) WhatsAppConfigured() bool {
	return c.WhatsAppToken != "" && c.PhoneNumberID != ""
}

// AdminAccounts returns the back office credentials, nil when none are set.
func (c *Config) AdminAccounts() map[string]string {
	if c.AdminUser == "" || c.AdminPassword == "" {
		return nil
	}
	return map[string]string{c.AdminUser: c.AdminPassword}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		logrus.Warnf("[CONFIG] invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

// getEnvDuration accepts Go durations ("750ms") or a bare number of milliseconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("[CONFIG] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
