package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	TokenSecret string
	TokenTTL    time.Duration
}

// Load reads configuration from the environment. The signing secret and
// database URL have no defaults on purpose.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	ttl, err := parseTTL(os.Getenv("TOKEN_TTL"))
	if err != nil {
		return nil, errors.New("TOKEN_TTL is invalid: " + err.Error())
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// parseTTL accepts "60m", "1h", "30s" or a bare number of minutes.
// Empty means the default token lifetime of 60 minutes.
func parseTTL(ttlStr string) (time.Duration, error) {
	if ttlStr == "" {
		return 60 * time.Minute, nil
	}

	if strings.HasSuffix(ttlStr, "m") ||
		strings.HasSuffix(ttlStr, "h") ||
		strings.HasSuffix(ttlStr, "s") {
		return time.ParseDuration(ttlStr)
	}

	min, err := strconv.Atoi(ttlStr)
	if err != nil {
		return 0, err
	}
	return time.Duration(min) * time.Minute, nil
}
