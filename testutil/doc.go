// Package testutil provides deterministic point generators for tests
// and benchmarks.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	cloud := rng.UniformPoints(64, 100, 100)   // uniform rectangle
//	tight := rng.ClusteredPoints(64, 4, 0.05)  // clusters with noise
//
// # Structured Inputs
//
//	grid := testutil.GridPoints(10, 15)                // integer lattice
//	dups := rng.DuplicatePoints(cloud, 8)              // coincident points
package testutil
