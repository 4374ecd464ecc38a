// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all runtime configuration for the dashboard.
type Config struct {
	// Endpoint
	BaseURL        string        `yaml:"base_url"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	Insecure       bool          `yaml:"insecure"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Refresh cadence; zero means manual refresh only.
	Interval time.Duration `yaml:"interval"`

	// Display
	PageSize  int    `yaml:"page_size"`
	ExportDir string `yaml:"export_dir"`

	// Observability
	LogFile     string `yaml:"log_file"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultPageSize       = 10
	DefaultExportDir      = "."
	DefaultLogLevel       = "info"
)

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes. An empty document yields a zero Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
