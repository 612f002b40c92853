package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors for the API. Each server owns its
// registry so that collectors never collide across instances.
type metrics struct {
	registry         *prometheus.Registry
	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reqcover_analyses_total",
			Help: "Coverage analyses by outcome.",
		}, []string{"status"}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "reqcover_analysis_duration_seconds",
			Help:    "Time spent running one coverage analysis.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
