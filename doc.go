// Package dispergo provides an exact solver for the discrete max-min
// dispersion problem on planar point sets: pick p of n points so that
// the smallest pairwise distance among the picked points is as large
// as possible.
//
// The solver calibrates a separation threshold by binary search over
// the sorted distinct pairwise distances of the input. Each probe asks
// whether p points can be kept strictly further apart than the probed
// distance, answered by a branch-and-bound search over the graph of
// too-close pairs. The optimum of the max-min objective always equals
// one of the pairwise distances, so searching that grid is exact.
//
// # Quick Start
//
//	ctx := context.Background()
//	solver := dispergo.New()
//
//	selection, err := solver.Solve(ctx, points, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(selection.Indices, selection.MinDistance)
//
// Restrict the candidates of a single call:
//
//	selection, err := solver.Solve(ctx, points, 3, func(o *dispergo.SolveOptions) {
//	    o.FilterFunc = func(i int) bool { return i != 4 }
//	})
//
// Solve many independent problems concurrently:
//
//	result := solver.BatchSolve(ctx, problems)
//
// # Outcomes
//
// Solve distinguishes precondition failures from honest infeasibility:
//
//   - ErrEmptyInput: no points were supplied.
//   - ErrInvalidPlacements: the placement count is not in [1, n].
//   - ErrUnsolvable: every candidate threshold was probed and none
//     admits p placements. With duplicate points this is a reachable,
//     ordinary outcome.
//
// Context cancellation surfaces as the context's own error and means
// the question was not decided either way.
//
// # Threshold Grids
//
// GridFull (the default) probes all O(n^2) distinct distances and
// returns the true optimum. GridAnchor probes only the O(n) distances
// measured from the first point, which is faster on large inputs but
// may settle below the optimum; the reported MinDistance is always the
// distance the returned selection actually achieves.
//
// # Observability
//
// Logging uses log/slog behind a small Logger wrapper and is silent by
// default. Metrics go through the MetricsCollector interface with
// in-memory and Prometheus (subpackage prom) implementations.
package dispergo
