package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	Env      Environment
	Debug    bool
	LogLevel string

	// AllowedOrigin is sent as Access-Control-Allow-Origin on API responses.
	AllowedOrigin string

	// Basic auth for the metrics listener; disabled when the hash is empty.
	MetricsUser         string
	MetricsPasswordHash string
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	cfg := &EnvConfig{
		Env:                 Environment(strings.ToLower(getEnvOrDefault("APP_ENV", "development"))),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		MetricsUser:         os.Getenv("METRICS_USER"),
		MetricsPasswordHash: os.Getenv("METRICS_PASSWORD_HASH"),
	}

	switch cfg.Env {
	case Production:
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
		cfg.AllowedOrigin = getEnvOrDefault("ALLOWED_ORIGIN", "")
	default:
		cfg.Env = Development // Normalize unknown envs to development
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
		cfg.AllowedOrigin = getEnvOrDefault("ALLOWED_ORIGIN", "*")
		if cfg.LogLevel == "info" && cfg.Debug {
			cfg.LogLevel = "debug"
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// MetricsAuthEnabled reports whether /metrics requires basic auth.
func (e *EnvConfig) MetricsAuthEnabled() bool {
	return e.MetricsPasswordHash != ""
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a non-negative decimal, returning defaultValue on
// empty or malformed input.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func parseInt64OrDefault(s string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
