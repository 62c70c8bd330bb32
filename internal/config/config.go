package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	JWTSecret        string
	JWTAudience      string
	Port             string
	AdminRole        string
	MatchLimit       int
	RateLimitMatch   RateLimitConfig
	RedisURL         string
	SessionTTL       time.Duration
	AssistantBaseURL string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		JWTAudience:      os.Getenv("JWT_AUDIENCE"),
		Port:             getEnv("PORT", "8080"),
		AdminRole:        getEnv("ADMIN_ROLE", "service_role"),
		RedisURL:         os.Getenv("REDIS_URL"),
		SessionTTL:       parseDuration(getEnv("SESSION_TTL", "2h")),
		AssistantBaseURL: strings.TrimRight(os.Getenv("ASSISTANT_BASE_URL"), "/"),
	}

	limit, err := strconv.Atoi(getEnv("MATCH_LIMIT", "8"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid MATCH_LIMIT value: %q", os.Getenv("MATCH_LIMIT"))
	}
	cfg.MatchLimit = limit

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_MATCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_MATCH value: %w", err)
	}
	cfg.RateLimitMatch = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 2 * time.Hour
	}
	return d
}
