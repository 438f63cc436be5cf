package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BIND_ADDR", "ENV", "STATE_SECRET", "STATE_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RANDOM_SOURCE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", cfg.Addr())
	}
	if cfg.StateExpiry != 24*time.Hour {
		t.Errorf("StateExpiry = %v, want 24h", cfg.StateExpiry)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.RandomSource != "math" {
		t.Errorf("RandomSource = %q, want math", cfg.RandomSource)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BIND_ADDR", "0.0.0.0")
	t.Setenv("STATE_EXPIRY", "30m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("RANDOM_SOURCE", "crypto")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.StateExpiry != 30*time.Minute {
		t.Errorf("StateExpiry = %v, want 30m", cfg.StateExpiry)
	}
	if cfg.RateLimitRPS != 0.5 || cfg.RateLimitBurst != 3 {
		t.Errorf("rate limit = %v/%d, want 0.5/3", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.RandomSource != "crypto" {
		t.Errorf("RandomSource = %q, want crypto", cfg.RandomSource)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Env: "production", StateSecret: "s3cret", StateExpiry: time.Hour, RateLimitRPS: 1, RateLimitBurst: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	devSecret := valid
	devSecret.StateSecret = devStateSecret
	if err := devSecret.Validate(); err == nil {
		t.Error("Validate() expected error for dev secret in production")
	}

	noBurst := valid
	noBurst.RateLimitBurst = 0
	if err := noBurst.Validate(); err == nil {
		t.Error("Validate() expected error for zero burst")
	}

	noExpiry := valid
	noExpiry.StateExpiry = 0
	if err := noExpiry.Validate(); err == nil {
		t.Error("Validate() expected error for zero expiry")
	}
}
