// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for audits and syntheses.
//
// Collectors are created per Collector and registered on the Registerer the
// caller passes in; nothing touches the default registry. A nil *Collector
// is valid and records nothing, so instrumented code needs no nil checks.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultPass  = "pass"
	ResultFail  = "fail"
	ResultError = "error"
)

// Collector groups the engine's metrics.
type Collector struct {
	audits     *prometheus.CounterVec
	violations prometheus.Counter
	syntheses  *prometheus.CounterVec
	gridNodes  prometheus.Histogram
	duration   *prometheus.HistogramVec
}

// New builds a Collector and registers it on reg. A nil reg leaves the
// collectors unregistered, which suits tests and one-shot CLI runs.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		audits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monoton_audits_total",
				Help: "Number of table audits by result.",
			},
			[]string{"result"},
		),
		violations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "monoton_violations_total",
				Help: "Total number of monotonicity violations found by audits.",
			},
		),
		syntheses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monoton_syntheses_total",
				Help: "Number of synthesized tables by strategy and result.",
			},
			[]string{"strategy", "result"},
		),
		gridNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "monoton_grid_nodes",
				Help:    "Node count of dominance grids built.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 11),
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "monoton_operation_duration_seconds",
				Help:    "Time taken by audits and syntheses.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.audits, c.violations, c.syntheses, c.gridNodes, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// ObserveGrid records the node count of a freshly built grid.
func (c *Collector) ObserveGrid(nodes int) {
	if c == nil {
		return
	}
	c.gridNodes.Observe(float64(nodes))
}

// ObserveAudit records one audit outcome.
func (c *Collector) ObserveAudit(violations int, err error, d time.Duration) {
	if c == nil {
		return
	}
	switch {
	case err != nil:
		c.audits.WithLabelValues(ResultError).Inc()
	case violations > 0:
		c.audits.WithLabelValues(ResultFail).Inc()
		c.violations.Add(float64(violations))
	default:
		c.audits.WithLabelValues(ResultPass).Inc()
	}
	c.duration.WithLabelValues("audit").Observe(d.Seconds())
}

// ObserveSynthesis records one synthesis by strategy name.
func (c *Collector) ObserveSynthesis(strategy string, err error, d time.Duration) {
	if c == nil {
		return
	}
	result := ResultPass
	if err != nil {
		result = ResultError
	}
	c.syntheses.WithLabelValues(strategy, result).Inc()
	c.duration.WithLabelValues("synthesize").Observe(d.Seconds())
}
