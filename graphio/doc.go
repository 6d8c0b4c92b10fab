// SPDX-License-Identifier: MIT

// Package graphio reads and writes graph documents in YAML or JSON and
// converts them to and from core.Graph[string].
//
// Document shape (YAML shown; JSON uses the same keys):
//
//	undirected: false
//	vertices: [D]          # optional; lists isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 1}
//	adjacency:             # optional; merged after edges
//	  A: {C: 4}
//
// Unknown keys are rejected. Edges are applied in document order, then
// adjacency entries in sorted key order, so a later entry for the same
// pair wins.
package graphio
