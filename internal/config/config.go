package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration, read from the environment once at
// startup. Defaults are development-friendly; production deployments are
// expected to set every value explicitly.
type Config struct {
	Port string
	Env  string

	AWSRegion      string
	InquiriesTable string
	LeadsTable     string

	JWTSecret string
	TokenTTL  time.Duration

	CognitoClientID     string
	CognitoClientSecret string

	NotifyFrom string
	NotifyTo   []string
	NotifyCC   []string

	AllowedOrigins []string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("APP_ENV", "development"),

		AWSRegion:      os.Getenv("AWS_REGION"),
		InquiriesTable: getenv("INQUIRIES_TABLE", "inquiries"),
		LeadsTable:     getenv("LEADS_TABLE", "leads"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-in-production-32bytes"),
		TokenTTL:  time.Duration(getenvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,

		CognitoClientID:     os.Getenv("COGNITO_CLIENT_ID"),
		CognitoClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),

		NotifyFrom: os.Getenv("NOTIFY_FROM"),
		NotifyTo:   splitList(os.Getenv("NOTIFY_TO")),
		NotifyCC:   splitList(os.Getenv("NOTIFY_CC")),

		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:4321")),

		RateLimitMax:    getenvInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: time.Duration(getenvInt("RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,
	}
}

// IsProduction reports whether the service runs in production mode.
// Raw error details are withheld from API responses in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// splitList parses a comma-separated env value into trimmed, non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
