package telemetry

import (
	"time"

	"github.com/rs/zerolog"
)

// SelectorObserver implements modexp.Observer, recording the exponentiation
// selector's algorithm choice and any runtime fallback to both the
// structured log and Prometheus metrics. modexp itself never imports this
// package, only the Observer interface it defines, so observability can
// never leak into the selection logic.
type SelectorObserver struct {
	Logger  zerolog.Logger
	Metrics *Metrics
	start   time.Time
}

// NewSelectorObserver constructs an Observer wired to logger and metrics.
// Either may be the zero value; a zero Metrics pointer (nil) disables
// metric recording without disabling logging, and vice versa.
func NewSelectorObserver(logger zerolog.Logger, metrics *Metrics) *SelectorObserver {
	return &SelectorObserver{Logger: logger, Metrics: metrics, start: time.Now()}
}

// OnSelect is called once per modexp call with the chosen algorithm.
func (o *SelectorObserver) OnSelect(algorithm string, reason string) {
	o.start = time.Now()
	o.Logger.Debug().Str("algorithm", algorithm).Str("reason", reason).Msg("modexp algorithm selected")
	if o.Metrics != nil {
		o.Metrics.ModexpCalls.WithLabelValues(algorithm).Inc()
	}
}

// OnFallback is called when Montgomery failed at runtime and ExpSelector is
// retrying with schoolbook.
func (o *SelectorObserver) OnFallback(from, to string, err error) {
	o.Logger.Warn().Str("from", from).Str("to", to).Err(err).Msg("modexp falling back")
	if o.Metrics != nil {
		o.Metrics.ModexpFallback.Inc()
	}
}

// ObserveDuration records the elapsed time since the last OnSelect call
// under algorithm's histogram bucket. Callers invoke this after the modexp
// call returns.
func (o *SelectorObserver) ObserveDuration(algorithm string) {
	if o.Metrics != nil {
		o.Metrics.ModexpDuration.WithLabelValues(algorithm).Observe(time.Since(o.start).Seconds())
	}
}
