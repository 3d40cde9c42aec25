package config

import (
	"os"
)

type Config struct {
	DefaultsDSN string
	OutputDir   string
	Env         string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.DefaultsDSN = getEnv("DEFAULTS_DSN", "file:invoice-studio.db")
	cfg.OutputDir = getEnv("OUTPUT_DIR", ".")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
