package config

import (
	"log/slog"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("expected env=dev, got %s", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DBPath != "printquote.db" {
		t.Errorf("expected default db path, got %s", cfg.DBPath)
	}
	if cfg.Admin.Email == "" {
		t.Error("expected a default admin email")
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_PATH", "/tmp/quotes.db")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.DBPath != "/tmp/quotes.db" {
		t.Errorf("expected overridden db path, got %s", cfg.DBPath)
	}
}

func TestNewInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("SESSION_SECRET", "something-real")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected invalid env to fall back to prod, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected invalid log level to fall back to info, got %s", cfg.LogLevel)
	}
}

func TestNewProdRequiresSessionSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("SESSION_SECRET", "")

	if _, err := New(); err == nil {
		t.Fatal("expected error for prod without SESSION_SECRET")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		cfg := &Config{LogLevel: tc.level}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%s) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
