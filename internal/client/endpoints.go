package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointHTTPTrace = "/actuator/httptrace"
	endpointCPU       = "/actuator/metrics/system.cpu.count"
	endpointHealth    = "/actuator/health"
	endpointUptime    = "/actuator/metrics/process.uptime"
)

// GetHTTPTraces fetches the recent request window from /actuator/httptrace.
func (c *DefaultClient) GetHTTPTraces(ctx context.Context) (*TraceList, error) {
	body, err := c.doGet(ctx, endpointHTTPTrace)
	if err != nil {
		return nil, fmt.Errorf("GetHTTPTraces: %w", err)
	}

	var result TraceList
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetHTTPTraces decode: %w", err)
	}
	return &result, nil
}

// GetSystemCPU fetches the CPU count metric.
func (c *DefaultClient) GetSystemCPU(ctx context.Context) (*SystemCPU, error) {
	body, err := c.doGet(ctx, endpointCPU)
	if err != nil {
		return nil, fmt.Errorf("GetSystemCPU: %w", err)
	}

	var result SystemCPU
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetSystemCPU decode: %w", err)
	}
	return &result, nil
}

// GetSystemHealth fetches the aggregated health report from /actuator/health.
func (c *DefaultClient) GetSystemHealth(ctx context.Context) (*SystemHealth, error) {
	body, err := c.doGet(ctx, endpointHealth)
	if err != nil {
		return nil, fmt.Errorf("GetSystemHealth: %w", err)
	}

	var result SystemHealth
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetSystemHealth decode: %w", err)
	}
	return &result, nil
}

// GetProcessUptime fetches the process.uptime metric (seconds).
func (c *DefaultClient) GetProcessUptime(ctx context.Context) (*Measurement, error) {
	body, err := c.doGet(ctx, endpointUptime)
	if err != nil {
		return nil, fmt.Errorf("GetProcessUptime: %w", err)
	}

	var result Measurement
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetProcessUptime decode: %w", err)
	}
	return &result, nil
}
