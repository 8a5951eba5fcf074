package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dispergo"
	"github.com/hupe1980/dispergo/geometry"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()

	return NewCollector(func(o *Options) {
		o.Registerer = prometheus.NewRegistry()
	})
}

func TestCollector_RecordSolve(t *testing.T) {
	c := newTestCollector(t)

	c.RecordSolve(5*time.Millisecond, nil)
	c.RecordSolve(time.Millisecond, errors.New("boom"))
	c.RecordSolve(time.Millisecond, nil)

	assert.InDelta(t, 2, testutil.ToFloat64(c.solves.WithLabelValues("ok")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(c.solves.WithLabelValues("error")), 1e-9)
}

func TestCollector_RecordProbe(t *testing.T) {
	c := newTestCollector(t)

	c.RecordProbe(true, time.Microsecond)
	c.RecordProbe(true, time.Microsecond)
	c.RecordProbe(false, time.Microsecond)

	assert.InDelta(t, 2, testutil.ToFloat64(c.probes.WithLabelValues("true")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(c.probes.WithLabelValues("false")), 1e-9)
}

func TestCollector_RecordBatchSolve(t *testing.T) {
	c := newTestCollector(t)

	c.RecordBatchSolve(5, 2, 10*time.Millisecond)

	assert.InDelta(t, 3, testutil.ToFloat64(c.batchProblems.WithLabelValues("ok")), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(c.batchProblems.WithLabelValues("error")), 1e-9)
}

func TestCollector_SolverIntegration(t *testing.T) {
	c := newTestCollector(t)
	solver := dispergo.New(dispergo.WithMetricsCollector(c))

	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
	}

	_, err := solver.Solve(context.Background(), points, 2)
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(c.solves.WithLabelValues("ok")), 1e-9)
	assert.Positive(t, testutil.ToFloat64(c.probes.WithLabelValues("true")), "calibration must probe at least one feasible threshold")
}

func TestNewCollector_CustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()

	c := NewCollector(func(o *Options) {
		o.Namespace = "myapp"
		o.Registerer = reg
	})
	c.RecordSolve(time.Millisecond, nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "myapp_solves_total")
	assert.Contains(t, names, "myapp_solve_duration_seconds")
}
