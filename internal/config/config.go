package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	History   HistoryConfig
}

// HistoryConfig selects where completed lookups are recorded.
// DatabaseURL wins over RedisAddr; with neither set history stays in memory.
type HistoryConfig struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MaxEntries    int
}

// LoadDotEnv loads a .env file if present. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	maxEntries, err := getInt("HISTORY_MAX_ENTRIES", 1000)
	if err != nil {
		return nil, err
	}
	if maxEntries < 1 {
		return nil, fmt.Errorf("config: HISTORY_MAX_ENTRIES must be positive, got %d", maxEntries)
	}

	return &Config{
		Port:      Get("PORT", "8080"),
		LogLevel:  Get("LOG_LEVEL", "info"),
		LogFormat: Get("LOG_FORMAT", "json"),
		History: HistoryConfig{
			DatabaseURL:   Get("DATABASE_URL", ""),
			RedisAddr:     Get("REDIS_ADDR", ""),
			RedisPassword: Get("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			MaxEntries:    maxEntries,
		},
	}, nil
}
