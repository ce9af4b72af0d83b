package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hueshift/internal/palette"
	"hueshift/internal/ui"
)

// DefaultFiles are tried in order when no config path is given.
var DefaultFiles = []string{"hueshift.yaml", "hueshift.yml", "hueshift.json"}

// Config holds all server configuration values.
type Config struct {
	Listen             string `json:"listen" yaml:"listen"`
	MetricsListen      string `json:"metrics_listen" yaml:"metrics_listen"`
	ReadTimeoutSec     int    `json:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec    int    `json:"write_timeout_sec" yaml:"write_timeout_sec"`
	ShutdownTimeoutSec int    `json:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec"`
	RateLimitRPM       int    `json:"rate_limit_rpm" yaml:"rate_limit_rpm"`
	RateLimitBurst     int    `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	// DefaultBoldness preselects a radio for the next Generate. The first
	// palette on the page is always drawn at palette.DefaultSpread.
	DefaultBoldness string `json:"default_boldness" yaml:"default_boldness"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `json:"seed" yaml:"seed"`

	// Loaded from environment variables
	Env *EnvConfig `json:"-" yaml:"-"`

	// Source is the file the values were read from, empty for defaults only.
	Source string `json:"-" yaml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Listen:             ":8080",
		MetricsListen:      ":9090",
		ReadTimeoutSec:     10,
		WriteTimeoutSec:    10,
		ShutdownTimeoutSec: 10,
		RateLimitRPM:       120,
		RateLimitBurst:     20,
		DefaultBoldness:    string(palette.BoldnessBalanced),
	}
}

// Load reads configuration from path, or from the first of DefaultFiles
// that exists when path is empty, then applies environment overrides.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		for _, candidate := range DefaultFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
		cfg.Source = path
	}

	cfg.Env = LoadEnv()
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".json":
		err = json.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config file type %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv lets environment variables win over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("HUESHIFT_LISTEN"); v != "" {
		c.Listen = v
	}
	if v, ok := os.LookupEnv("HUESHIFT_METRICS_LISTEN"); ok {
		c.MetricsListen = v
	}
	c.RateLimitRPM = parseIntOrDefault(os.Getenv("RATE_LIMIT_RPM"), c.RateLimitRPM)
	if v := os.Getenv("HUESHIFT_SEED"); v != "" {
		c.Seed = parseInt64OrDefault(v, c.Seed)
	}
}

// MetricsEnabled reports whether the metrics listener should start.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsListen != ""
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsEnabled() && c.MetricsListen == c.Listen {
		errs = append(errs, "metrics_listen must differ from listen")
	}

	if c.ReadTimeoutSec <= 0 {
		errs = append(errs, "read_timeout_sec must be positive")
	}
	if c.WriteTimeoutSec <= 0 {
		errs = append(errs, "write_timeout_sec must be positive")
	}
	if c.ShutdownTimeoutSec <= 0 {
		errs = append(errs, "shutdown_timeout_sec must be positive")
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, "rate_limit_rpm must not be negative (0 disables limiting)")
	}
	if c.RateLimitRPM > 0 && c.RateLimitBurst <= 0 {
		errs = append(errs, "rate_limit_burst must be positive when rate limiting is enabled")
	}

	if _, err := palette.ParseBoldness(c.DefaultBoldness); err != nil {
		errs = append(errs, "default_boldness: "+err.Error())
	}

	if c.Env != nil && c.Env.MetricsPasswordHash != "" {
		if c.Env.MetricsUser == "" {
			errs = append(errs, "METRICS_USER is required when METRICS_PASSWORD_HASH is set")
		}
		if !looksLikeBcrypt(c.Env.MetricsPasswordHash) {
			errs = append(errs, "METRICS_PASSWORD_HASH is not a bcrypt hash (generate one with "+ui.Command("hueshift hash-password")+")")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

func looksLikeBcrypt(hash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return len(hash) == 60
		}
	}
	return false
}
