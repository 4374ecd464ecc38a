package model

import (
	"encoding/json"
	"time"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/format"
)

// Snapshot is the reconciled dashboard state. It is created empty and mutated
// in place by one Apply call per data source; a failed fetch simply skips its
// Apply so that category keeps its last good value.
type Snapshot struct {
	Traces   []client.HTTPTrace
	Buckets  Buckets
	TracesAt time.Time

	CPU   *client.SystemCPU
	CPUAt time.Time

	Health   *HealthView
	HealthAt time.Time

	Uptime   UptimeTicker
	UptimeAt time.Time
}

// ApplyTraces replaces the trace window and its partition. The previous buckets
// are discarded whole; nothing carries over between polls.
func (s *Snapshot) ApplyTraces(traces []client.HTTPTrace, buckets Buckets, at time.Time) {
	s.Traces = traces
	s.Buckets = buckets
	s.TracesAt = at
}

// ApplyCPU stores the CPU reading unmodified.
func (s *Snapshot) ApplyCPU(cpu *client.SystemCPU, at time.Time) {
	s.CPU = cpu
	s.CPUAt = at
}

// ApplyHealth stores the health reading together with its formatted disk-free
// figure.
func (s *Snapshot) ApplyHealth(h *client.SystemHealth, at time.Time) {
	s.Health = NewHealthView(h)
	s.HealthAt = at
}

// ApplyUptime rebases the uptime counter and returns the new cadence generation.
// first is true when this is the first uptime ever applied.
func (s *Snapshot) ApplyUptime(seconds int64, at time.Time) (gen uint64, first bool) {
	first = !s.Uptime.Running()
	gen = s.Uptime.SetBase(seconds)
	s.UptimeAt = at
	return gen, first
}

// CPUCount returns the first CPU measurement, or -1 when none is available.
func (s *Snapshot) CPUCount() float64 {
	if s.CPU == nil {
		return -1
	}
	v, err := s.CPU.FirstValue()
	if err != nil {
		return -1
	}
	return v
}

// HealthView is a health reading prepared for display. DiskFree is the
// formatted free-space string the status display shows; DiskFreeBytes keeps
// the raw count.
type HealthView struct {
	Raw           client.SystemHealth
	DiskFreeBytes int64
	DiskFree      string
}

// NewHealthView builds a HealthView from a raw reading.
func NewHealthView(h *client.SystemHealth) *HealthView {
	if h == nil {
		return nil
	}
	free := h.Components.DiskSpace.Details.Free
	return &HealthView{
		Raw:           *h,
		DiskFreeBytes: free,
		DiskFree:      format.FormatBytes(free),
	}
}

// Status returns the aggregate health status, e.g. "UP".
func (v *HealthView) Status() string {
	if v == nil {
		return ""
	}
	return v.Raw.Status
}

// MarshalJSON renders the health document in the shape the dashboard has
// always exported: components.diskSpace.details.free holds the formatted
// string, not the byte count. The byte count is kept alongside as freeBytes.
func (v HealthView) MarshalJSON() ([]byte, error) {
	type details struct {
		Total     int64  `json:"total"`
		Free      string `json:"free"`
		FreeBytes int64  `json:"freeBytes"`
		Threshold int64  `json:"threshold"`
		Exists    bool   `json:"exists"`
	}
	type diskSpace struct {
		Status  string  `json:"status"`
		Details details `json:"details"`
	}
	type components struct {
		DB        *client.ComponentStatus `json:"db,omitempty"`
		DiskSpace diskSpace               `json:"diskSpace"`
		Ping      *client.ComponentStatus `json:"ping,omitempty"`
	}
	d := v.Raw.Components.DiskSpace
	return json.Marshal(struct {
		Status     string     `json:"status"`
		Components components `json:"components"`
	}{
		Status: v.Raw.Status,
		Components: components{
			DB: v.Raw.Components.DB,
			DiskSpace: diskSpace{
				Status: d.Status,
				Details: details{
					Total:     d.Details.Total,
					Free:      v.DiskFree,
					FreeBytes: v.DiskFreeBytes,
					Threshold: d.Details.Threshold,
					Exists:    d.Details.Exists,
				},
			},
			Ping: v.Raw.Components.Ping,
		},
	})
}
