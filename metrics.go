package dispergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
// The prom subpackage ships a ready-made Prometheus implementation.
type MetricsCollector interface {
	// RecordSolve is called after each solve operation.
	// duration is the total time taken, err is nil if successful.
	RecordSolve(duration time.Duration, err error)

	// RecordProbe is called after each feasibility probe of the
	// calibration loop. feasible reports the probe outcome.
	RecordProbe(feasible bool, duration time.Duration)

	// RecordBatchSolve is called after each batch solve operation.
	// count is the number of problems attempted, failed is the number
	// that returned an error, duration is the total time taken.
	RecordBatchSolve(count, failed int, duration time.Duration)

	// RecordBruteSolve is called after each exhaustive solve operation.
	RecordBruteSolve(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(time.Duration, error)         {}
func (NoopMetricsCollector) RecordProbe(bool, time.Duration)          {}
func (NoopMetricsCollector) RecordBatchSolve(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordBruteSolve(time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount       atomic.Int64
	SolveErrors      atomic.Int64
	SolveTotalNanos  atomic.Int64
	ProbeCount       atomic.Int64
	ProbeFeasible    atomic.Int64
	ProbeTotalNanos  atomic.Int64
	BatchSolveCount  atomic.Int64
	BatchSolveItems  atomic.Int64
	BatchSolveFailed atomic.Int64
	BruteSolveCount  atomic.Int64
	BruteSolveErrors atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// RecordProbe implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProbe(feasible bool, duration time.Duration) {
	b.ProbeCount.Add(1)
	b.ProbeTotalNanos.Add(duration.Nanoseconds())
	if feasible {
		b.ProbeFeasible.Add(1)
	}
}

// RecordBatchSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSolve(count, failed int, duration time.Duration) {
	b.BatchSolveCount.Add(1)
	b.BatchSolveItems.Add(int64(count))
	b.BatchSolveFailed.Add(int64(failed))
}

// RecordBruteSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBruteSolve(duration time.Duration, err error) {
	b.BruteSolveCount.Add(1)
	if err != nil {
		b.BruteSolveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:       b.SolveCount.Load(),
		SolveErrors:      b.SolveErrors.Load(),
		SolveAvgNanos:    b.getAvgSolveNanos(),
		ProbeCount:       b.ProbeCount.Load(),
		ProbeFeasible:    b.ProbeFeasible.Load(),
		ProbeAvgNanos:    b.getAvgProbeNanos(),
		BatchSolveCount:  b.BatchSolveCount.Load(),
		BatchSolveItems:  b.BatchSolveItems.Load(),
		BatchSolveFailed: b.BatchSolveFailed.Load(),
		BruteSolveCount:  b.BruteSolveCount.Load(),
		BruteSolveErrors: b.BruteSolveErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgProbeNanos() int64 {
	count := b.ProbeCount.Load()
	if count == 0 {
		return 0
	}
	return b.ProbeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount       int64
	SolveErrors      int64
	SolveAvgNanos    int64
	ProbeCount       int64
	ProbeFeasible    int64
	ProbeAvgNanos    int64
	BatchSolveCount  int64
	BatchSolveItems  int64
	BatchSolveFailed int64
	BruteSolveCount  int64
	BruteSolveErrors int64
}
