package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dm/actdash/internal/engine"
	"github.com/dm/actdash/internal/format"
	"github.com/dm/actdash/internal/model"
)

// summary is the --once --json document.
type summary struct {
	BaseURL       string            `json:"baseUrl"`
	FetchedAt     time.Time         `json:"fetchedAt"`
	Traces        *traceSummary     `json:"traces,omitempty"`
	CPUCount      *float64          `json:"cpuCount,omitempty"`
	Health        *model.HealthView `json:"health,omitempty"`
	Uptime        string            `json:"uptime,omitempty"`
	UptimeSeconds *int64            `json:"uptimeSeconds,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
}

type traceSummary struct {
	Total   int            `json:"total"`
	Buckets map[string]int `json:"buckets"`
}

// buildSummary reconciles res into a fresh snapshot and flattens it.
func buildSummary(baseURL string, res *engine.Results) summary {
	var snap model.Snapshot
	res.Apply(&snap)

	s := summary{BaseURL: baseURL, FetchedAt: res.FetchedAt, Health: snap.Health}
	if !snap.TracesAt.IsZero() {
		ts := &traceSummary{Total: snap.Buckets.Total(), Buckets: make(map[string]int)}
		for _, b := range model.AllBuckets {
			ts.Buckets[b.Label()] = snap.Buckets.Len(b)
		}
		s.Traces = ts
	}
	if n := snap.CPUCount(); n >= 0 {
		s.CPUCount = &n
	}
	if snap.Uptime.Running() {
		secs := snap.Uptime.Seconds()
		s.UptimeSeconds = &secs
		s.Uptime = snap.Uptime.String()
	}
	if len(res.Errs) > 0 {
		s.Errors = make(map[string]string, len(res.Errs))
		for src, err := range res.Errs {
			s.Errors[string(src)] = err.Error()
		}
	}
	return s
}

// writeSummary prints the outcome of a single FetchAll cycle.
func writeSummary(w io.Writer, baseURL string, res *engine.Results, asJSON bool) error {
	s := buildSummary(baseURL, res)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "actuator: %s\n", s.BaseURL)

	if s.Traces != nil {
		parts := make([]string, 0, len(model.AllBuckets))
		for _, bk := range model.AllBuckets {
			parts = append(parts, fmt.Sprintf("%s: %d", bk.Label(), s.Traces.Buckets[bk.Label()]))
		}
		fmt.Fprintf(&b, "traces:   %d (%s)\n", s.Traces.Total, strings.Join(parts, "  "))
	} else {
		b.WriteString("traces:   ---\n")
	}

	if s.CPUCount != nil {
		fmt.Fprintf(&b, "cpu:      %s\n", strconv.FormatFloat(*s.CPUCount, 'f', -1, 64))
	} else {
		b.WriteString("cpu:      ---\n")
	}

	if s.Health != nil {
		d := s.Health.Raw.Components.DiskSpace.Details
		fmt.Fprintf(&b, "health:   %s  disk free: %s of %s\n", s.Health.Status(), s.Health.DiskFree, format.FormatBytes(d.Total))
	} else {
		b.WriteString("health:   ---\n")
	}

	if s.UptimeSeconds != nil {
		fmt.Fprintf(&b, "uptime:   %s\n", s.Uptime)
	} else {
		b.WriteString("uptime:   ---\n")
	}

	if len(s.Errors) > 0 {
		srcs := make([]string, 0, len(s.Errors))
		for src := range s.Errors {
			srcs = append(srcs, src)
		}
		sort.Strings(srcs)
		for _, src := range srcs {
			fmt.Fprintf(&b, "error:    %s: %s\n", src, s.Errors[src])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
