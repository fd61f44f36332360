package worker

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Recorder observes build outcomes. Implementations must be safe for use
// from the worker goroutine.
type Recorder interface {
	IncSuccess()
	IncFailure(stage string)
	ObserveBuildDuration(d time.Duration)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) IncSuccess()                        {}
func (NopRecorder) IncFailure(string)                  {}
func (NopRecorder) ObserveBuildDuration(time.Duration) {}

// PrometheusRecorder implements Recorder on Prometheus metrics.
type PrometheusRecorder struct {
	outcomes *prom.CounterVec
	failures *prom.CounterVec
	duration prom.Histogram
}

// NewPrometheusRecorder constructs and registers the worker metrics. A nil
// registry gets a private one, which keeps tests isolated.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &PrometheusRecorder{
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbake",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by result",
		}, []string{"outcome"}),
		failures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbake",
			Name:      "build_failures_total",
			Help:      "Failed builds by failure stage",
		}, []string{"stage"}),
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "navbake",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(r.outcomes, r.failures, r.duration)
	return r
}

func (r *PrometheusRecorder) IncSuccess() {
	r.outcomes.WithLabelValues("success").Inc()
}

func (r *PrometheusRecorder) IncFailure(stage string) {
	r.outcomes.WithLabelValues("failure").Inc()
	r.failures.WithLabelValues(stage).Inc()
}

func (r *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	r.duration.Observe(d.Seconds())
}
