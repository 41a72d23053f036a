package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GraphsBuiltTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volgen_graphs_built_total",
			Help: "Total number of translator graphs built, by role and outcome",
		},
		[]string{"role", "outcome"},
	)

	GraphBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volgen_graph_build_duration_seconds",
			Help:    "Time taken to build one translator graph, by role",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"role"},
	)

	GraphNodesTotal = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volgen_graph_nodes",
			Help:    "Number of translator nodes in a built graph, by role",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
		[]string{"role"},
	)

	VolfilesWrittenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volgen_volfiles_written_total",
			Help: "Total number of volfiles actually written to disk, by role",
		},
		[]string{"role"},
	)

	VolfilesUnchangedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volgen_volfiles_unchanged_total",
			Help: "Total number of volfile writes skipped because the registry digest matched, by role",
		},
		[]string{"role"},
	)

	DispatchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volgen_dispatch_errors_total",
			Help: "Total number of option dispatch failures, by role",
		},
		[]string{"role"},
	)

	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volgen_generation_duration_seconds",
			Help:    "Wall-clock time for one full generate invocation, by role",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"role"},
	)

	VolumesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "volgen_volumes_total",
			Help: "Total number of volumes known to the registry",
		},
	)

	VolumesStarted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "volgen_volumes_started",
			Help: "Number of volumes in the started state",
		},
	)
)

func init() {
	prometheus.MustRegister(GraphsBuiltTotal)
	prometheus.MustRegister(GraphBuildDuration)
	prometheus.MustRegister(GraphNodesTotal)
	prometheus.MustRegister(VolfilesWrittenTotal)
	prometheus.MustRegister(VolfilesUnchangedTotal)
	prometheus.MustRegister(DispatchErrorsTotal)
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(VolumesTotal)
	prometheus.MustRegister(VolumesStarted)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer times a single operation and reports its duration into a
// histogram on Observe.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time into histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed time into a label-scoped histogram.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
