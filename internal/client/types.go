package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"time"
)

// ErrNoMeasurements is returned when a metric response carries an empty
// measurements array.
var ErrNoMeasurements = errors.New("metric has no measurements")

// TraceList represents the response from /actuator/httptrace.
type TraceList struct {
	Traces []HTTPTrace `json:"traces"`
}

// HTTPTrace is one recorded request/response exchange. Only the status code is
// interpreted; everything else is carried through for display. Raw holds the
// original JSON object so the detail view can show fields this type does not
// model.
type HTTPTrace struct {
	Timestamp string
	Principal string
	Session   string
	Request   TraceRequest
	Response  TraceResponse
	TimeTaken int64 // ms; -1 when absent
	Raw       json.RawMessage
}

// TraceRequest holds the request half of a trace.
type TraceRequest struct {
	Method        string              `json:"method"`
	URI           string              `json:"uri"`
	RemoteAddress string              `json:"remoteAddress"`
	Headers       map[string][]string `json:"headers"`
}

// TraceResponse holds the response half of a trace. Status is kept raw because
// the server is not trusted to send an integer.
type TraceResponse struct {
	Status  json.RawMessage     `json:"status"`
	Headers map[string][]string `json:"headers"`
}

// UnmarshalJSON decodes a trace leniently: a malformed request, response or
// principal section leaves that section zero instead of failing the whole
// trace list.
func (t *HTTPTrace) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*t = HTTPTrace{TimeTaken: -1}
	t.Raw = append(json.RawMessage(nil), data...)

	_ = json.Unmarshal(fields["timestamp"], &t.Timestamp)
	_ = json.Unmarshal(fields["request"], &t.Request)
	_ = json.Unmarshal(fields["response"], &t.Response)

	if raw, ok := fields["principal"]; ok {
		var p struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(raw, &p) == nil {
			t.Principal = p.Name
		}
	}
	if raw, ok := fields["session"]; ok {
		var s struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(raw, &s) == nil {
			t.Session = s.ID
		}
	}
	if raw, ok := fields["timeTaken"]; ok {
		var ms float64
		if json.Unmarshal(raw, &ms) == nil {
			t.TimeTaken = int64(ms)
		}
	}
	return nil
}

// MarshalJSON returns the original JSON when available so a decoded trace
// round-trips without losing unmodelled fields.
func (t HTTPTrace) MarshalJSON() ([]byte, error) {
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	type plain struct {
		Timestamp string        `json:"timestamp,omitempty"`
		Request   TraceRequest  `json:"request"`
		Response  TraceResponse `json:"response"`
		TimeTaken int64         `json:"timeTaken"`
	}
	resp := t.Response
	if len(resp.Status) == 0 {
		resp.Status = json.RawMessage("null")
	}
	return json.Marshal(plain{
		Timestamp: t.Timestamp,
		Request:   t.Request,
		Response:  resp,
		TimeTaken: t.TimeTaken,
	})
}

// Status returns the integer HTTP status code of the response. ok is false
// when the status is absent, null, a string, or not an integral number.
func (t HTTPTrace) Status() (code int, ok bool) {
	raw := bytes.TrimSpace(t.Response.Status)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Time parses the trace timestamp. The zero time is returned when the
// timestamp is missing or not RFC 3339.
func (t HTTPTrace) Time() time.Time {
	ts, err := time.Parse(time.RFC3339Nano, t.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Measurement is the generic body of an /actuator/metrics/<name> response.
type Measurement struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	BaseUnit      string             `json:"baseUnit"`
	Measurements  []MeasurementValue `json:"measurements"`
	AvailableTags []MetricTag        `json:"availableTags"`
}

// MeasurementValue is one statistic of a metric.
type MeasurementValue struct {
	Statistic string  `json:"statistic"`
	Value     float64 `json:"value"`
}

// MetricTag is a tag dimension the metric can be filtered by.
type MetricTag struct {
	Tag    string   `json:"tag"`
	Values []string `json:"values"`
}

// FirstValue returns measurements[0].value or ErrNoMeasurements.
func (m *Measurement) FirstValue() (float64, error) {
	if m == nil || len(m.Measurements) == 0 {
		return 0, ErrNoMeasurements
	}
	return m.Measurements[0].Value, nil
}

// SystemCPU represents the response from /actuator/metrics/system.cpu.count.
type SystemCPU = Measurement

// SystemHealth represents the response from /actuator/health with details
// enabled.
type SystemHealth struct {
	Status     string           `json:"status"`
	Components HealthComponents `json:"components"`
}

// HealthComponents holds the per-indicator health results.
type HealthComponents struct {
	DB        *ComponentStatus `json:"db,omitempty"`
	DiskSpace DiskSpaceHealth  `json:"diskSpace"`
	Ping      *ComponentStatus `json:"ping,omitempty"`
}

// ComponentStatus is a health indicator with free-form details.
type ComponentStatus struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// DiskSpaceHealth is the diskSpace health indicator.
type DiskSpaceHealth struct {
	Status  string           `json:"status"`
	Details DiskSpaceDetails `json:"details"`
}

// DiskSpaceDetails holds disk capacity in bytes.
type DiskSpaceDetails struct {
	Total     int64 `json:"total"`
	Free      int64 `json:"free"`
	Threshold int64 `json:"threshold"`
	Exists    bool  `json:"exists"`
}
