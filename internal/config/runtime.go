package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "jovemservicos.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultProfitMargin  = "20"
	defaultSeedAdminPass = "admin123"
)

type RuntimeConfig struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// SeedProfitMarginPercent is only the value cmd/seed writes into the
	// profit_config row; the live margin is read from the store.
	SeedProfitMarginPercent float64
	SeedAdminPassword       string
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.SeedAdminPassword = getEnv("SEED_ADMIN_PASSWORD", defaultSeedAdminPass)

	ttlRaw := strings.TrimSpace(getEnv("JWT_TTL", defaultJWTTTL))
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	marginRaw := strings.TrimSpace(getEnv("PROFIT_MARGIN_PERCENT", defaultProfitMargin))
	margin, err := strconv.ParseFloat(marginRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PROFIT_MARGIN_PERCENT value %q: %w", marginRaw, err)
	}
	cfg.SeedProfitMarginPercent = margin

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.SeedProfitMarginPercent < 0 || cfg.SeedProfitMarginPercent > 100 {
		return fmt.Errorf("PROFIT_MARGIN_PERCENT must be within [0,100]")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
