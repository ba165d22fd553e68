// Package config loads server configuration from environment variables, with
// optional .env file support for development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	LogLevel      string
	Port          uint16
	DBPath        string
	SessionSecret string
	Admin         AdminConfig
}

// AdminConfig contains initial admin user configuration.
// These values are only used on first startup to create the admin user.
type AdminConfig struct {
	Email    string
	Password string
}

const devSessionSecret = "dev-secret-change-in-production"

// New loads the configuration from the environment. A .env file in the
// current directory (or up to two levels above it) is applied first.
func New() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:           getEnv("ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnvInt("PORT", 8080),
		DBPath:        getEnv("DB_PATH", "printquote.db"),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@printquote.local"),
			Password: getEnv("ADMIN_PASSWORD", "admin"),
		},
	}

	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Env == "prod" && cfg.SessionSecret == devSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production environment")
	}

	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
