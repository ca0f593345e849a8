package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "HISTORY_MAX_ENTRIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.History.DatabaseURL)
	assert.Equal(t, 0, cfg.History.RedisDB)
	assert.Equal(t, 1000, cfg.History.MaxEntries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("HISTORY_MAX_ENTRIES", " 50 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.History.RedisAddr)
	assert.Equal(t, 2, cfg.History.RedisDB)
	assert.Equal(t, 50, cfg.History.MaxEntries)
}

func TestLoadRejectsBadIntegers(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_DB")

	t.Setenv("REDIS_DB", "")
	t.Setenv("HISTORY_MAX_ENTRIES", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "HISTORY_MAX_ENTRIES")
}
