package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURL    string
	MongoDBName string

	// Redis (optional review-feed cache; empty addr disables it)
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReviewCacheTTL time.Duration

	// Review policy. The source revisions disagree on whether review
	// creation requires a logged-in user and on which extra fields the
	// record carries, so each is an explicit switch here.
	ReviewsRequireAuth     bool
	ReviewsReviewerEnabled bool
	ReviewsHeartsEnabled   bool

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// Contact form
	ContactRecipient string
	MailSendEnabled  bool

	// CORS
	CORSAllowedOrigins string // comma-separated; empty allows all origins

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "yogajuristen-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "9001"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:    getenv("MONGO_URL", "mongodb://localhost/yogajuristen"),
		MongoDBName: getenv("MONGO_DB", "yogajuristen"),

		RedisAddr:      getenv("REDIS_ADDR", ""),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		RedisDB:        getint("REDIS_DB", 0),
		ReviewCacheTTL: getdur("REVIEW_CACHE_TTL", 10*time.Second),

		ReviewsRequireAuth:     getbool("REVIEWS_REQUIRE_AUTH", true),
		ReviewsReviewerEnabled: getbool("REVIEWS_REVIEWER_ENABLED", true),
		ReviewsHeartsEnabled:   getbool("REVIEWS_HEARTS_ENABLED", false),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		ContactRecipient: getenv("CONTACT_RECIPIENT", "yogajuristen@gmail.com"),
		MailSendEnabled:  getbool("MAIL_SEND_ENABLED", true),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice; empty means all origins.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
