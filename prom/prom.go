// Package prom provides a Prometheus implementation of the
// dispergo.MetricsCollector interface.
//
//	collector := prom.NewCollector()
//	solver := dispergo.New(dispergo.WithMetricsCollector(collector))
package prom

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/dispergo"
)

// Options for the Collector.
type Options struct {
	// Namespace prefixes every metric name.
	Namespace string

	// Registerer receives the metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// Collector records solver metrics into Prometheus. It is safe for
// concurrent use.
type Collector struct {
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	probes        *prometheus.CounterVec
	probeDuration prometheus.Histogram
	batchProblems *prometheus.CounterVec
	batchDuration prometheus.Histogram
	bruteSolves   *prometheus.CounterVec
}

var _ dispergo.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics.
// Registering two Collectors with the same namespace on the same
// registry fails the way duplicate Prometheus registrations always do.
func NewCollector(optFns ...func(o *Options)) *Collector {
	opts := Options{
		Namespace:  "dispergo",
		Registerer: prometheus.DefaultRegisterer,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	factory := promauto.With(opts.Registerer)

	return &Collector{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "solves_total",
			Help:      "Total number of solve operations by outcome",
		}, []string{"outcome"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of solve operations",
			Buckets:   prometheus.DefBuckets,
		}),
		probes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "probes_total",
			Help:      "Total number of feasibility probes by outcome",
		}, []string{"feasible"}),
		probeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "probe_duration_seconds",
			Help:      "Wall time of feasibility probes",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		batchProblems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "batch_problems_total",
			Help:      "Total number of problems handled by batch solves, by outcome",
		}, []string{"outcome"}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of batch solve operations",
			Buckets:   prometheus.DefBuckets,
		}),
		bruteSolves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "brute_solves_total",
			Help:      "Total number of exhaustive solve operations by outcome",
		}, []string{"outcome"}),
	}
}

// RecordSolve implements dispergo.MetricsCollector.
func (c *Collector) RecordSolve(duration time.Duration, err error) {
	c.solves.WithLabelValues(outcome(err)).Inc()
	c.solveDuration.Observe(duration.Seconds())
}

// RecordProbe implements dispergo.MetricsCollector.
func (c *Collector) RecordProbe(feasible bool, duration time.Duration) {
	c.probes.WithLabelValues(strconv.FormatBool(feasible)).Inc()
	c.probeDuration.Observe(duration.Seconds())
}

// RecordBatchSolve implements dispergo.MetricsCollector.
func (c *Collector) RecordBatchSolve(count, failed int, duration time.Duration) {
	c.batchProblems.WithLabelValues("ok").Add(float64(count - failed))
	c.batchProblems.WithLabelValues("error").Add(float64(failed))
	c.batchDuration.Observe(duration.Seconds())
}

// RecordBruteSolve implements dispergo.MetricsCollector.
func (c *Collector) RecordBruteSolve(duration time.Duration, err error) {
	c.bruteSolves.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
