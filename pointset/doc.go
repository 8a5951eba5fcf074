// Package pointset provides a fixed-capacity bitset over point indices.
//
// A Set tracks a subset of the universe [0, capacity) in packed uint64
// words and maintains its cardinality incrementally, so Len is O(1) and
// the pruning tests in the feasibility search never rescan words. Sets
// are not safe for concurrent mutation; the solver gives each search
// its own arena of sets.
package pointset
