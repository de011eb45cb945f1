// Package isingo computes exact thermodynamic and ground-state properties
// of a classical Ising model on an arbitrary graph by brute-force
// enumeration of all 2^N spin configurations.
//
// It is built for small systems — tens of sites at most — where the exact
// answer is cheap enough to serve as ground truth for approximate methods
// such as Monte Carlo samplers.
//
// # Quick Start
//
//	// A 3-site chain with unit couplings and a field on site 0.
//	// Every edge is listed at both endpoints; the energy functional
//	// counts it once, at the lower-indexed endpoint.
//	couplings := [][]isingo.Coupling{
//	    {{Neighbor: 1, Strength: 1.0}},
//	    {{Neighbor: 0, Strength: 1.0}, {Neighbor: 2, Strength: 1.0}},
//	    {{Neighbor: 1, Strength: 1.0}},
//	}
//	fields := []float64{1.2, 0, 0}
//
//	m, _ := isingo.New(couplings, fields)
//
//	gs, _ := m.GroundState(ctx)       // exact minimum over all 2^3 configurations
//	th, _ := m.AverageValues(ctx, 1.0) // exact <E>, <M>, heat capacity, susceptibility
//
// # Parallel Sweeps
//
// Enumeration is embarrassingly parallel. WithParallelism splits the index
// range across workers with per-worker accumulators and an index-ordered
// merge, so parallel results match the sequential sweep exactly, including
// the ground-state tie-break (lowest index attaining the minimum):
//
//	m, _ := isingo.New(couplings, fields, isingo.WithParallelism(0)) // one worker per CPU
//
// # Subpackages
//
//   - spin: the fixed-length bit configuration type
//   - spectrum: full (index, energy) spectrum export with optional compression
package isingo
