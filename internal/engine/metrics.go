package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dm/actdash/internal/model"
)

// Metrics collects Prometheus metrics for the poll loop. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	traceBucket   *prometheus.GaugeVec
	uptime        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		fetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "actdash_fetch_total",
				Help: "Total number of actuator fetches by source and result",
			},
			[]string{"source", "result"},
		),
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "actdash_fetch_duration_seconds",
				Help:    "Actuator fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		traceBucket: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "actdash_trace_bucket",
				Help: "Number of traces in each outcome bucket of the latest window",
			},
			[]string{"bucket"},
		),
		uptime: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "actdash_process_uptime_seconds",
				Help: "Last server-reported process uptime in seconds",
			},
		),
	}
}

func (m *Metrics) observeFetch(src Source, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetchTotal.WithLabelValues(string(src), result).Inc()
	m.fetchDuration.WithLabelValues(string(src)).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeBuckets(b *model.Buckets) {
	if m == nil {
		return
	}
	for _, bucket := range model.AllBuckets {
		m.traceBucket.WithLabelValues(bucket.Label()).Set(float64(b.Len(bucket)))
	}
}

func (m *Metrics) observeUptime(seconds int64) {
	if m == nil {
		return
	}
	m.uptime.Set(float64(seconds))
}
