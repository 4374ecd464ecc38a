// internal/config/normalize.go
package config

import "strings"

// Normalize fills defaults for unset fields.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = DefaultExportDir
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
