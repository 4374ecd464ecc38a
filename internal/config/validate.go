// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: unsupported scheme %q (must be http or https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("base_url %q: host is required", cfg.BaseURL)
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if cfg.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}

	return nil
}
