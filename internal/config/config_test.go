package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTrackerEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_PORT",
		"METALS_API_KEY",
		"GOLDAPI_BASE_URL",
		"SPOT_CACHE_TTL_SECONDS",
		"QUOTE_TIMEOUT_SECONDS",
		"FALLBACK_SPOT_PRICE",
		"SESSION_MAX_IDLE_MINUTES",
		"SESSION_SWEEP_SCHEDULE",
		"LOG_LEVEL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearTrackerEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Metals.APIKey)
	assert.Equal(t, "https://www.goldapi.io/api", cfg.Metals.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Metals.Timeout)
	assert.Equal(t, 300*time.Second, cfg.Pricing.CacheTTL)
	assert.Equal(t, 69.00, cfg.Pricing.FallbackPrice)
	assert.Equal(t, 60*time.Minute, cfg.Sessions.MaxIdle)
	assert.Equal(t, "@every 10m", cfg.Sessions.SweepSchedule)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("APP_PORT", "9999")
	t.Setenv("METALS_API_KEY", "goldapi-test-key")
	t.Setenv("SPOT_CACHE_TTL_SECONDS", "30")
	t.Setenv("FALLBACK_SPOT_PRICE", "30")
	t.Setenv("SESSION_MAX_IDLE_MINUTES", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "goldapi-test-key", cfg.Metals.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Pricing.CacheTTL)
	assert.Equal(t, 30.0, cfg.Pricing.FallbackPrice)
	assert.Equal(t, 5*time.Minute, cfg.Sessions.MaxIdle)
}

func TestLoadRejectsUnparsableNumbers(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("SPOT_CACHE_TTL_SECONDS", "five minutes")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveFallback(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("FALLBACK_SPOT_PRICE", "-1")

	_, err := Load("")
	assert.Error(t, err)
}
