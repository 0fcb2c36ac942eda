package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes sweep and HTTP telemetry in Prometheus format. It
// implements verify.Observer so the sweep runner can feed it directly.
//
// Each instance owns its registry, so tests can construct as many as
// they need without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	roundsTotal    *prometheus.CounterVec
	wordsTotal     prometheus.Counter
	activeWorkers  prometheus.Gauge
	requestsTotal  prometheus.Counter
	activeRequests prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all collectors registered,
// including the Go runtime collector.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		roundsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpvec_rounds_total",
			Help: "Verification rounds completed, by kernel.",
		}, []string{"kernel"}),
		wordsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mpvec_words_total",
			Help: "Total digit words processed across all kernels.",
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mpvec_active_workers",
			Help: "Sweep goroutines currently running.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mpvec_requests_total",
			Help: "Total HTTP requests served.",
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mpvec_active_requests",
			Help: "HTTP requests currently in flight.",
		}),
	}

	reg.MustRegister(
		m.roundsTotal,
		m.wordsTotal,
		m.activeWorkers,
		m.requestsTotal,
		m.activeRequests,
		collectors.NewGoCollector(),
	)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// RoundCompleted records one finished verification round. Implements
// verify.Observer.
func (m *Metrics) RoundCompleted(kernel string, words int) {
	m.roundsTotal.WithLabelValues(kernel).Inc()
	m.wordsTotal.Add(float64(words))
}

// WorkerActive tracks sweep goroutine starts and stops. Implements
// verify.Observer.
func (m *Metrics) WorkerActive(delta int) {
	m.activeWorkers.Add(float64(delta))
}

// IncrementActiveRequests records the start of an HTTP request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests records the end of an HTTP request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
