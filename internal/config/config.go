// Package config loads the console's client configuration: where the admin
// API lives and how long requests may take. Values come from config.json in
// the config dir, overridable per-invocation through the environment.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production admin API host.
	DefaultBaseURL = "https://api.emibocquillon.fr"

	defaultTimeout = 30 * time.Second
)

type Config struct {
	// APIBaseURL is the scheme+host of the admin API.
	APIBaseURL string `json:"apiBaseUrl,omitempty"`

	// TimeoutSeconds bounds each request; the transport default applies
	// when zero.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty"`
}

// Dir returns the console's config directory.
// JYADMIN_CONFIG_DIR overrides it (keeps unit tests from touching ~/.jyadmin).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("JYADMIN_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jyadmin"), nil
}

func path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads config.json (a missing file is not an error) and applies
// environment overrides: JYADMIN_API_URL, JYADMIN_TIMEOUT_SECONDS.
func Load() (Config, error) {
	var cfg Config

	p, err := path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("JYADMIN_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("JYADMIN_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	return cfg, nil
}

// Save writes config.json, creating the config dir if needed.
func Save(cfg Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0o600)
}

// BaseURL returns the configured host or the production default.
func (c Config) BaseURL() string {
	if v := strings.TrimSpace(c.APIBaseURL); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultBaseURL
}

// Timeout returns the configured request timeout or the default.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
