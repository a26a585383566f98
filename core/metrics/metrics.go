package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seed_manager"

// Outcome labels for LoadsTotal.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Ingest holds the ingestion metrics.
type Ingest struct {
	LoadsTotal   *prometheus.CounterVec
	RecordsTotal *prometheus.CounterVec
	LoadDuration *prometheus.HistogramVec
}

func newIngest() *Ingest {
	return &Ingest{
		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingest",
				Name:      "loads_total",
				Help:      "Total number of loads by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		RecordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingest",
				Name:      "records_total",
				Help:      "Total number of records produced by successful loads",
			},
			[]string{"format"},
		),
		LoadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "ingest",
				Name:      "load_duration_seconds",
				Help:      "Load duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"format"},
		),
	}
}

// ObserveLoad records one load. A nil err counts as success and adds records
// to RecordsTotal.
func (m *Ingest) ObserveLoad(format string, records int, elapsed time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.LoadsTotal.WithLabelValues(format, outcome).Inc()
	m.LoadDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	if err == nil {
		m.RecordsTotal.WithLabelValues(format).Add(float64(records))
	}
}

// Registry owns a private prometheus registry with the ingestion metrics and
// the Go runtime collectors.
type Registry struct {
	registry *prometheus.Registry
	Ingest   *Ingest
}

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Ingest:   newIngest(),
	}
	r.registry.MustRegister(
		r.Ingest.LoadsTotal,
		r.Ingest.RecordsTotal,
		r.Ingest.LoadDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Prometheus returns the underlying registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler returns a fiber handler serving the registry in the exposition format.
func (r *Registry) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
