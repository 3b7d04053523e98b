// Package metrics exports verification outcomes in the Prometheus text format, for
// node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// TextfileRecorder collects check metrics in a private registry and writes them on Flush.
// With no output path it only counts.
type TextfileRecorder struct {
	path     string
	registry *prometheus.Registry

	checksTotal  *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	lastRun      *prometheus.GaugeVec
}

// NewTextfileRecorder creates a recorder writing to cfg.MetricsFile
func NewTextfileRecorder(cfg *config.RuntimeConfig) *TextfileRecorder {
	r := &TextfileRecorder{
		path:     cfg.MetricsFile,
		registry: prometheus.NewRegistry(),
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokencheck_checks_total",
				Help: "Total number of accessor checks by outcome",
			},
			[]string{"environment", "accessor", "status"},
		),
		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tokencheck_call_duration_seconds",
				Help:    "Accessor call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"environment", "accessor"},
		),
		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tokencheck_last_check_passed",
				Help: "1 if the last check of an accessor passed, 0 otherwise",
			},
			[]string{"environment", "accessor"},
		),
	}
	r.registry.MustRegister(r.checksTotal, r.callDuration, r.lastRun)
	return r
}

// ObserveCheck records one check outcome
func (r *TextfileRecorder) ObserveCheck(environment string, check domain.CheckResult) {
	r.checksTotal.WithLabelValues(environment, check.Accessor, string(check.Status)).Inc()
	if check.Status == domain.CheckSkipped {
		return
	}
	r.callDuration.WithLabelValues(environment, check.Accessor).Observe(check.Duration.Seconds())

	passed := 0.0
	if check.Status == domain.CheckPassed {
		passed = 1
	}
	r.lastRun.WithLabelValues(environment, check.Accessor).Set(passed)
}

// Flush writes the registry to the configured file atomically
func (r *TextfileRecorder) Flush() error {
	if r.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(r.path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", r.path, err)
	}
	return nil
}

var _ usecase.MetricsRecorder = (*TextfileRecorder)(nil)
