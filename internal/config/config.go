package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application-wide settings. It is read from the
// environment once at startup and treated as immutable afterwards.
type Config struct {
	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// Server
	ServerPort string

	// Rate limit for the unauthenticated auth endpoints, per client IP.
	AuthRateLimit float64 // requests per minute
	AuthRateBurst int
}

// Load reads the configuration from environment variables. Missing
// required variables are reported together in a single error.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg.ServerPort = getEnvString("PORT", "3000")

	var err error

	cfg.AuthRateLimit, err = getEnvFloat("AUTH_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}

	cfg.AuthRateBurst, err = getEnvInt("AUTH_RATE_BURST", 10)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return f, nil
}
