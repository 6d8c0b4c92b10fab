// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest paths on core.Graph values with
// non-negative edge weights.
//
// Two priority-queue strategies are provided, with identical results on
// non-negative graphs:
//
//   - Fibonacci heap (Search, ShortestPaths, Path): every vertex is
//     enqueued up front, the source at 0 and the rest at core.Infinity, and
//     relaxation calls DecreaseKey. Time O(E + V log V).
//   - Binary heap (SearchBinaryHeap, ShortestPathsBinaryHeap): the
//     "lazy decrease-key" pattern. Each relaxation pushes a fresh entry and
//     a visited set discards stale ones on pop. Time O(E log V), simpler
//     and usually faster on small graphs.
//
// Single-pair searches stop as soon as the target is dequeued: once a
// vertex is popped its distance is final, since pops come out in
// non-decreasing order. Single-source searches run until the queue drains
// and report core.Infinity for every unreachable vertex.
//
// "No path" is a regular outcome, never an error: Search reports ok=false,
// Path returns ErrNoPath, tables hold core.Infinity.
//
// Negative weights:
//
//	Every entry point returns ErrNegativeWeight as soon as it relaxes an
//	edge with weight < 0. The check happens when the weight is used, so
//	negative edges that the run never reaches (leaving unreachable vertices,
//	or beyond an early exit) go unnoticed. Callers needing a full guarantee
//	can check core.Graph.HasNegativeWeight first.
//
// Options:
//
//   - WithOnSettle(fn): fn(v, d) is called each time a vertex is finalized.
//   - WithMaxDistance(d): stop once the smallest tentative distance exceeds d.
//   - WithLogger(l): debug-level tracing of settle and relax events.
//
// Thread safety:
//
//	Each call owns its own queue and distance table and only reads the
//	graph, so concurrent searches over one graph are safe.
package dijkstra
