package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("RATE_LIMIT_TX_MAX", "")
	t.Setenv("RATE_LIMIT_TX_WINDOW_SECONDS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CorsOrigin != "*" {
		t.Errorf("CorsOrigin = %q, want *", cfg.CorsOrigin)
	}
	if cfg.CreateRateMax != 60 {
		t.Errorf("CreateRateMax = %d, want 60", cfg.CreateRateMax)
	}
	if cfg.CreateRateWindow != time.Minute {
		t.Errorf("CreateRateWindow = %v, want 1m", cfg.CreateRateWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("RATE_LIMIT_TX_MAX", "5")
	t.Setenv("RATE_LIMIT_TX_WINDOW_SECONDS", "30")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.CreateRateMax != 5 || cfg.CreateRateWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v, want 5/30s", cfg.CreateRateMax, cfg.CreateRateWindow)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_TX_MAX", "not-a-number")
	if got := getEnvInt("RATE_LIMIT_TX_MAX", 60); got != 60 {
		t.Errorf("getEnvInt = %d, want fallback 60", got)
	}
	t.Setenv("RATE_LIMIT_TX_MAX", "-1")
	if got := getEnvInt("RATE_LIMIT_TX_MAX", 60); got != 60 {
		t.Errorf("getEnvInt(-1) = %d, want fallback 60", got)
	}
}
