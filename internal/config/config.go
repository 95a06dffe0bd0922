package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Metals   MetalsConfig
	Pricing  PricingConfig
	Sessions SessionConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MetalsConfig contains credentials and options for the goldapi.io metals
// API. APIKey may be empty: the tracker then skips live quotes entirely and
// serves the configured fallback price.
type MetalsConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// PricingConfig controls the spot price oracle.
type PricingConfig struct {
	CacheTTL      time.Duration
	FallbackPrice float64
}

// SessionConfig holds session lifecycle settings.
type SessionConfig struct {
	MaxIdle       time.Duration
	SweepSchedule string
}

// LoggingConfig holds logger options.
type LoggingConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cacheTTLSeconds, err := getenvInt("SPOT_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	quoteTimeoutSeconds, err := getenvInt("QUOTE_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	fallbackPrice, err := getenvFloat("FALLBACK_SPOT_PRICE", 69.00)
	if err != nil {
		return nil, err
	}
	maxIdleMinutes, err := getenvInt("SESSION_MAX_IDLE_MINUTES", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Metals: MetalsConfig{
			APIKey:  os.Getenv("METALS_API_KEY"),
			BaseURL: getenvWithDefault("GOLDAPI_BASE_URL", "https://www.goldapi.io/api"),
			Timeout: time.Duration(quoteTimeoutSeconds) * time.Second,
		},
		Pricing: PricingConfig{
			CacheTTL:      time.Duration(cacheTTLSeconds) * time.Second,
			FallbackPrice: fallbackPrice,
		},
		Sessions: SessionConfig{
			MaxIdle:       time.Duration(maxIdleMinutes) * time.Minute,
			SweepSchedule: getenvWithDefault("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		},
		Logging: LoggingConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. A
// missing metals API key is deliberately not an error.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Metals.BaseURL == "" {
		return errors.New("GOLDAPI_BASE_URL must not be empty")
	}

	if c.Metals.Timeout <= 0 {
		return errors.New("QUOTE_TIMEOUT_SECONDS must be positive")
	}

	if c.Pricing.CacheTTL <= 0 {
		return errors.New("SPOT_CACHE_TTL_SECONDS must be positive")
	}

	if c.Pricing.FallbackPrice <= 0 {
		return errors.New("FALLBACK_SPOT_PRICE must be positive")
	}

	if c.Sessions.MaxIdle <= 0 {
		return errors.New("SESSION_MAX_IDLE_MINUTES must be positive")
	}

	if c.Sessions.SweepSchedule == "" {
		return errors.New("SESSION_SWEEP_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, raw, err)
	}
	return v, nil
}

func getenvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q: %w", key, raw, err)
	}
	return v, nil
}
