package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the Prometheus collectors for scenario resolution.
type Registry struct {
	reg *prometheus.Registry

	Resolutions     *prometheus.CounterVec
	Unresolved      *prometheus.CounterVec
	AnalysisLatency prometheus.Histogram
	FeedClients     prometheus.Gauge
}

// NewRegistry creates a registry with all collectors registered on a private
// prometheus.Registry, so tests can build as many as they need.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenario_resolutions_total",
				Help: "Resolved scenarios by bias and locale",
			},
			[]string{"type", "locale"},
		),

		Unresolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenario_unresolved_total",
				Help: "Lookups that found no scenario, by reason",
			},
			[]string{"reason"},
		),

		AnalysisLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scenario_analysis_duration_seconds",
				Help:    "Duration of a full analysis including persistence",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),

		FeedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "scenario_feed_clients",
				Help: "Connected websocket feed clients",
			},
		),
	}

	r.reg.MustRegister(
		r.Resolutions,
		r.Unresolved,
		r.AnalysisLatency,
		r.FeedClients,
	)
	return r
}

func (r *Registry) RecordResolution(bias, locale string) {
	r.Resolutions.WithLabelValues(bias, locale).Inc()
}

func (r *Registry) RecordUnresolved(reason string) {
	r.Unresolved.WithLabelValues(reason).Inc()
}

func (r *Registry) ObserveAnalysis(start time.Time) {
	r.AnalysisLatency.Observe(time.Since(start).Seconds())
}

// Handler exposes the collectors in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
