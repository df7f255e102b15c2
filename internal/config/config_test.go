package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"SESSION_BACKEND":   "",
		"SESSION_TTL":       "",
		"REDIS_URL":         "",
		"RATE_LIMIT_MAX":    "",
		"RATE_LIMIT_WINDOW": "",
		"COMPANY_NAME":      "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "memory", cfg.SessionBackend)
	require.Equal(t, 4*time.Hour, cfg.SessionTTL)
	require.Equal(t, 120, cfg.RateLimitMax)
	require.Equal(t, "ARCHIMART PTY LTD", cfg.Company.Name)
	require.Equal(t, "65 675 558 353", cfg.Company.ABN)
}

func TestLoadRedisBackendRequiresURL(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"SESSION_BACKEND": "redis",
		"REDIS_URL":       "",
	})
	require.Error(t, err)

	cfg, err := config.LoadForTests(map[string]string{
		"SESSION_BACKEND": "redis",
		"REDIS_URL":       "redis://localhost:6379/0",
	})
	require.NoError(t, err)
	require.Equal(t, "redis", cfg.SessionBackend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"SESSION_BACKEND": "postgres",
	})
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PORT":                 "9100",
		"SESSION_TTL":          "30m",
		"CORS_ALLOWED_ORIGINS": "https://quotes.archimart.example, https://staging.archimart.example",
		"COMPANY_PHONE":        "0400 000 000",
	})
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.HTTPAddr())
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, []string{"https://quotes.archimart.example", "https://staging.archimart.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "0400 000 000", cfg.Company.Phone)
}
