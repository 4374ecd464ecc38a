package tui

import (
	"time"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/engine"
)

// TracesMsg delivers a successful trace fetch.
type TracesMsg struct {
	Result *engine.TraceResult
	At     time.Time
}

// CPUMsg delivers a successful CPU metric fetch.
type CPUMsg struct {
	CPU *client.SystemCPU
	At  time.Time
}

// HealthMsg delivers a successful health fetch.
type HealthMsg struct {
	Health *client.SystemHealth
	At     time.Time
}

// UptimeMsg delivers a successful uptime fetch, already rounded to seconds.
type UptimeMsg struct {
	Seconds int64
	At      time.Time
}

// FetchErrorMsg signals that one source failed.
type FetchErrorMsg struct {
	Source engine.Source
	Err    error
}

// UptimeTickMsg advances the local uptime counter. Gen ties it to the base it
// was scheduled for.
type UptimeTickMsg struct{ Gen uint64 }

// RefreshTickMsg triggers the next scheduled refresh.
type RefreshTickMsg time.Time

// ExportResultMsg reports the outcome of a CSV export.
type ExportResultMsg struct {
	Path string
	Err  error
}
