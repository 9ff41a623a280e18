package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, "mongodb://localhost/yogajuristen", cfg.MongoURL)
	require.Equal(t, "yogajuristen", cfg.MongoDBName)
	require.Equal(t, "yogajuristen@gmail.com", cfg.ContactRecipient)
	require.True(t, cfg.ReviewsRequireAuth)
	require.True(t, cfg.ReviewsReviewerEnabled)
	require.False(t, cfg.ReviewsHeartsEnabled)
	require.True(t, cfg.MailSendEnabled)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, 10*time.Second, cfg.ReviewCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REVIEWS_REQUIRE_AUTH", "false")
	t.Setenv("REVIEWS_HEARTS_ENABLED", "true")
	t.Setenv("REVIEW_CACHE_TTL", "1m")

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.False(t, cfg.ReviewsRequireAuth)
	require.True(t, cfg.ReviewsHeartsEnabled)
	require.Equal(t, time.Minute, cfg.ReviewCacheTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REVIEWS_REQUIRE_AUTH", "not-a-bool")
	t.Setenv("REVIEW_CACHE_TTL", "soon")

	cfg := Load()
	require.True(t, cfg.ReviewsRequireAuth)
	require.Equal(t, 10*time.Second, cfg.ReviewCacheTTL)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ")
	cfg := Load()
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	require.Empty(t, Load().CORSOrigins())
}
