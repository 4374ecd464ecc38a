package engine

import (
	"context"
	"errors"

	"github.com/dm/actdash/internal/client"
)

// MockActuatorClient implements client.ActuatorClient for testing.
type MockActuatorClient struct {
	TracesFn func(ctx context.Context) (*client.TraceList, error)
	CPUFn    func(ctx context.Context) (*client.SystemCPU, error)
	HealthFn func(ctx context.Context) (*client.SystemHealth, error)
	UptimeFn func(ctx context.Context) (*client.Measurement, error)
}

func (m *MockActuatorClient) GetHTTPTraces(ctx context.Context) (*client.TraceList, error) {
	if m.TracesFn != nil {
		return m.TracesFn(ctx)
	}
	return &client.TraceList{Traces: []client.HTTPTrace{traceWithStatus("200")}}, nil
}

func (m *MockActuatorClient) GetSystemCPU(ctx context.Context) (*client.SystemCPU, error) {
	if m.CPUFn != nil {
		return m.CPUFn(ctx)
	}
	return &client.SystemCPU{
		Name:         "system.cpu.count",
		Measurements: []client.MeasurementValue{{Statistic: "VALUE", Value: 4}},
	}, nil
}

func (m *MockActuatorClient) GetSystemHealth(ctx context.Context) (*client.SystemHealth, error) {
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	h := &client.SystemHealth{Status: "UP"}
	h.Components.DiskSpace.Details.Free = 1024
	return h, nil
}

func (m *MockActuatorClient) GetProcessUptime(ctx context.Context) (*client.Measurement, error) {
	if m.UptimeFn != nil {
		return m.UptimeFn(ctx)
	}
	return &client.Measurement{
		Name:         "process.uptime",
		Measurements: []client.MeasurementValue{{Statistic: "VALUE", Value: 120.4}},
	}, nil
}

func (m *MockActuatorClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockActuatorClient) BaseURL() string {
	return "http://mock:8080"
}

// traceWithStatus builds a trace whose response.status is the given raw JSON.
// An empty string leaves the status absent.
func traceWithStatus(raw string) client.HTTPTrace {
	var tr client.HTTPTrace
	tr.TimeTaken = -1
	if raw != "" {
		tr.Response.Status = []byte(raw)
	}
	return tr
}

var errMockFailure = errors.New("mock failure")
