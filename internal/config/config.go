// Package config reads the process configuration from the environment and
// the season layout file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Data
	DataDir     string
	SeasonsFile string // empty means the embedded seasons.yaml
	BackupPath  string

	// Freshness of the refreshed season cache
	CacheMaxAge time.Duration

	// Downloads
	HTTPTimeout time.Duration

	// Telemetry
	LogLevel string
}

// Load reads envFiles (".env" when none are given) into the environment,
// then builds the Config. Missing env files are ignored.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return &Config{
		DataDir:     envStr("GOCLUB_DATA_DIR", "data"),
		SeasonsFile: envStr("GOCLUB_SEASONS_FILE", ""),
		BackupPath:  envStr("GOCLUB_BACKUP_PATH", ""),

		CacheMaxAge: time.Duration(envInt("GOCLUB_CACHE_MAX_AGE_DAYS", 3)) * 24 * time.Hour,
		HTTPTimeout: time.Duration(envInt("GOCLUB_HTTP_TIMEOUT_SEC", 30)) * time.Second,

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
