package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/model"
)

// Source names one of the four independent data sources of a refresh.
type Source string

const (
	SourceTraces Source = "traces"
	SourceCPU    Source = "cpu"
	SourceHealth Source = "health"
	SourceUptime Source = "uptime"
)

// Sources lists every source in refresh order.
var Sources = []Source{SourceTraces, SourceCPU, SourceHealth, SourceUptime}

// TraceResult is the outcome of a successful trace fetch.
type TraceResult struct {
	Traces  []client.HTTPTrace
	Buckets model.Buckets
}

// FetchTraces fetches the trace window and classifies it.
func FetchTraces(ctx context.Context, c client.ActuatorClient, m *Metrics) (*TraceResult, error) {
	start := time.Now()
	list, err := c.GetHTTPTraces(ctx)
	m.observeFetch(SourceTraces, start, err)
	if err != nil {
		return nil, err
	}
	var traces []client.HTTPTrace
	if list != nil {
		traces = list.Traces
	}
	buckets := Classify(traces)
	m.observeBuckets(&buckets)
	return &TraceResult{Traces: traces, Buckets: buckets}, nil
}

// FetchCPU fetches the CPU metric.
func FetchCPU(ctx context.Context, c client.ActuatorClient, m *Metrics) (*client.SystemCPU, error) {
	start := time.Now()
	cpu, err := c.GetSystemCPU(ctx)
	m.observeFetch(SourceCPU, start, err)
	return cpu, err
}

// FetchHealth fetches the health report.
func FetchHealth(ctx context.Context, c client.ActuatorClient, m *Metrics) (*client.SystemHealth, error) {
	start := time.Now()
	h, err := c.GetSystemHealth(ctx)
	m.observeFetch(SourceHealth, start, err)
	return h, err
}

// FetchUptime fetches process.uptime and returns it rounded to the nearest
// whole second. A response without measurements is a fetch failure.
func FetchUptime(ctx context.Context, c client.ActuatorClient, m *Metrics) (int64, error) {
	start := time.Now()
	seconds, err := fetchUptime(ctx, c)
	m.observeFetch(SourceUptime, start, err)
	if err != nil {
		return 0, err
	}
	m.observeUptime(seconds)
	return seconds, nil
}

func fetchUptime(ctx context.Context, c client.ActuatorClient) (int64, error) {
	meas, err := c.GetProcessUptime(ctx)
	if err != nil {
		return 0, err
	}
	v, err := meas.FirstValue()
	if err != nil {
		return 0, fmt.Errorf("GetProcessUptime: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("GetProcessUptime: invalid value %v", v)
	}
	return RoundSeconds(v), nil
}

// RoundSeconds rounds a seconds measurement half away from zero, clamping
// negatives to zero.
func RoundSeconds(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(math.Round(v))
}

// Results holds the outcome of one FetchAll cycle. Each source has its own
// value and error; a failed source leaves its value nil/zero.
type Results struct {
	Traces    *TraceResult
	CPU       *client.SystemCPU
	Health    *client.SystemHealth
	Uptime    int64
	Errs      map[Source]error
	FetchedAt time.Time
}

// Failed reports whether any source failed.
func (r *Results) Failed() bool {
	return len(r.Errs) > 0
}

// Apply reconciles the successful sources of r into snap. Failed sources are
// left untouched.
func (r *Results) Apply(snap *model.Snapshot) {
	if _, failed := r.Errs[SourceTraces]; !failed && r.Traces != nil {
		snap.ApplyTraces(r.Traces.Traces, r.Traces.Buckets, r.FetchedAt)
	}
	if _, failed := r.Errs[SourceCPU]; !failed && r.CPU != nil {
		snap.ApplyCPU(r.CPU, r.FetchedAt)
	}
	if _, failed := r.Errs[SourceHealth]; !failed && r.Health != nil {
		snap.ApplyHealth(r.Health, r.FetchedAt)
	}
	if _, failed := r.Errs[SourceUptime]; !failed {
		snap.ApplyUptime(r.Uptime, r.FetchedAt)
	}
}

// FetchAll calls all four actuator sources concurrently and waits for every
// one of them. Failures are independent: each error is recorded under its
// source and never cancels the other calls, so the group itself never fails.
func FetchAll(ctx context.Context, c client.ActuatorClient, m *Metrics) *Results {
	res := &Results{Errs: make(map[Source]error)}
	errs := make([]error, len(Sources))

	var g errgroup.Group

	g.Go(func() error {
		res.Traces, errs[0] = FetchTraces(ctx, c, m)
		return nil
	})

	g.Go(func() error {
		res.CPU, errs[1] = FetchCPU(ctx, c, m)
		return nil
	})

	g.Go(func() error {
		res.Health, errs[2] = FetchHealth(ctx, c, m)
		return nil
	})

	g.Go(func() error {
		res.Uptime, errs[3] = FetchUptime(ctx, c, m)
		return nil
	})

	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			res.Errs[Sources[i]] = err
		}
	}
	res.FetchedAt = time.Now()
	return res
}
