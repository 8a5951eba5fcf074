// Package search decides whether p points can be placed at pairwise
// distances strictly above a threshold.
//
// The question is turned into an independent-set problem: a
// NeighborGraph connects every pair of points at distance less than or
// equal to the threshold, and a selection is feasible exactly when it
// is an independent set of size p in that graph. The Searcher explores
// include/exclude branches over the lowest-indexed candidate, pruning
// any branch whose remaining candidates cannot reach p, and stops at
// the first witness. Branch order is deterministic, so equal inputs
// always yield equal witnesses.
//
// A Searcher keeps one pre-allocated state per recursion depth and
// reuses the same memory across probes, so repeated feasibility checks
// during calibration do not allocate.
package search
