// SPDX-License-Identifier: MIT

// Package builder generates deterministic weighted fixtures for the
// shortest-path algorithms: paths, cycles, grids, complete graphs and
// Erdős–Rényi-like random graphs over integer vertices 0..n-1.
//
// A single orchestrator, BuildGraph, creates a core.Graph[int], resolves
// the BuilderOption list into a builderConfig, and runs Constructors in
// order. Constructors validate their parameters and return sentinel
// errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource);
// option constructors panic on meaningless input.
//
// Determinism: the same constructors, options and seed always produce
// the same graph, including vertex and edge insertion order.
package builder
