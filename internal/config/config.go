package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const devStateSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	BindAddr       string
	Env            string
	StateSecret    string
	StateExpiry    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	RandomSource   string
	LogLevel       slog.Level
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		BindAddr:       getEnv("BIND_ADDR", "127.0.0.1"),
		Env:            getEnv("ENV", "development"),
		StateSecret:    getEnv("STATE_SECRET", devStateSecret),
		StateExpiry:    getEnvDuration("STATE_EXPIRY", 24*time.Hour),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		RandomSource:   getEnv("RANDOM_SOURCE", "math"),
		LogLevel:       getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate rejects settings the server can't run with.
func (c Config) Validate() error {
	if c.Env == "production" && c.StateSecret == devStateSecret {
		return errors.New("STATE_SECRET must be set in production environment")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.StateExpiry <= 0 {
		return errors.New("STATE_EXPIRY must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(getEnv(key, "")))); err != nil {
		return fallback
	}
	return level
}
