package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ActuatorClient defines the interface for reading a Spring Boot Actuator
// instrumentation endpoint.
type ActuatorClient interface {
	GetHTTPTraces(ctx context.Context) (*TraceList, error)
	GetSystemCPU(ctx context.Context) (*SystemCPU, error)
	GetSystemHealth(ctx context.Context) (*SystemHealth, error)
	GetProcessUptime(ctx context.Context) (*Measurement, error)
	Ping(ctx context.Context) error
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL            string
	Username           string
	Password           string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
}

// DefaultClient implements ActuatorClient using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
}

// NewDefaultClient constructs a DefaultClient from the given config.
// It configures TLS skip-verify and request timeout from the config.
// Returns an error if BaseURL is empty.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config: cfg,
	}, nil
}

// BaseURL returns the configured base URL of the actuator endpoint.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// doGet performs a GET request to the given path (relative to BaseURL).
// It sets Accept: application/json and Basic Auth if credentials are configured.
// Returns the response body bytes or an error on non-2xx status.
func (c *DefaultClient) doGet(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Actuator answers with application/vnd.spring-boot.actuator.v3+json by
	// default; plain JSON is accepted by every version.
	req.Header.Set("Accept", "application/json")

	if c.config.Username != "" || c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	const maxResponseBytes = 32 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d MB limit", maxResponseBytes/(1024*1024))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// Ping checks connectivity by calling /actuator/health with a 1s timeout.
// A DOWN application answers 503 and therefore fails the ping.
func (c *DefaultClient) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	_, err := c.doGet(pingCtx, endpointHealth)
	return err
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
