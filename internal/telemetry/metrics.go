package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps the Prometheus counters/histograms the CLI records while
// running RSA operations. It is built on a private registry rather than the
// global default, so tests and concurrent CLI invocations in the same
// process never collide over metric registration.
type Metrics struct {
	registry       *prometheus.Registry
	ModexpCalls    *prometheus.CounterVec
	ModexpFallback prometheus.Counter
	ModexpDuration *prometheus.HistogramVec
	BigintOverflow *prometheus.CounterVec
}

// NewMetrics constructs and registers every counter/histogram.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ModexpCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "modexp_calls_total",
			Help: "Number of modular exponentiation calls, by algorithm.",
		}, []string{"algorithm"}),
		ModexpFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "modexp_fallback_total",
			Help: "Number of times ExpSelector fell back from Montgomery to schoolbook.",
		}),
		ModexpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "modexp_duration_seconds",
			Help: "Duration of modular exponentiation calls, by algorithm.",
		}, []string{"algorithm"}),
		BigintOverflow: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigint_overflow_total",
			Help: "Number of BigUint operations that failed with Overflow, by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.ModexpCalls, m.ModexpFallback, m.ModexpDuration, m.BigintOverflow)
	return m
}

// Handler returns an http.Handler serving this Metrics' registry in the
// Prometheus exposition format, for the CLI's optional --metrics-addr
// server.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
