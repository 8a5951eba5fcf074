package dispergo

import (
	"fmt"
	"log/slog"
	"runtime"
)

// ThresholdGrid selects the candidate distances calibration probes.
type ThresholdGrid int

const (
	// GridFull probes every distinct pairwise distance. The optimum can
	// only sit on this grid, so calibration is exact.
	GridFull ThresholdGrid = iota

	// GridAnchor probes only the distances measured from the first
	// point. The grid shrinks from O(n^2) to O(n) values, but the
	// optimum may fall between two anchor distances; the reported
	// selection is then the best one separated by an anchor distance.
	GridAnchor
)

func (g ThresholdGrid) String() string {
	switch g {
	case GridFull:
		return "Full"
	case GridAnchor:
		return "Anchor"
	default:
		return fmt.Sprintf("Unknown(%d)", int(g))
	}
}

type options struct {
	grid             ThresholdGrid
	adjacencyWorkers int
	batchWorkers     int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Solver behavior.
type Option func(*options)

// WithThresholdGrid configures which candidate grid calibration probes.
// The default is GridFull.
func WithThresholdGrid(grid ThresholdGrid) Option {
	return func(o *options) {
		o.grid = grid
	}
}

// WithAdjacencyWorkers configures how many goroutines build the
// too-close rows of each probe. Values below 2 keep the build
// single-threaded (the default). Row construction is embarrassingly
// parallel, so larger point sets benefit from a worker per core.
func WithAdjacencyWorkers(workers int) Option {
	return func(o *options) {
		o.adjacencyWorkers = workers
	}
}

// WithBatchWorkers configures how many problems BatchSolve runs
// concurrently. Defaults to runtime.GOMAXPROCS(0). Values below 1 are
// treated as 1.
func WithBatchWorkers(workers int) Option {
	return func(o *options) {
		o.batchWorkers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dispergo.BasicMetricsCollector{}
//	solver := dispergo.New(dispergo.WithMetricsCollector(metrics))
//	// ... use solver ...
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Probes: %d\n", stats.SolveCount, stats.ProbeCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := dispergo.NewJSONLogger(slog.LevelInfo)
//	solver := dispergo.New(dispergo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets
// it. Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		grid:             GridFull,
		adjacencyWorkers: 1,
		batchWorkers:     runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
