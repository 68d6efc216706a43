package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/cypress")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/cypress", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cypress")
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_SECRET", "s3cret")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseTTL(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 60 * time.Minute},
		{"15m", 15 * time.Minute},
		{"1h", time.Hour},
		{"20s", 20 * time.Second},
		{"30", 30 * time.Minute},
	}

	for _, tc := range cases {
		got, err := parseTTL(tc.in)
		require.NoError(t, err, "ttl %q", tc.in)
		assert.Equal(t, tc.want, got, "ttl %q", tc.in)
	}

	_, err := parseTTL("bogus")
	assert.Error(t, err)
}
