// SPDX-License-Identifier: MIT

// Package core defines the weighted Graph container consumed by the
// shortest-path algorithms: a mapping from each vertex to its outgoing
// edges, iterable over every registered vertex (isolated ones included).
//
// Vertices are any comparable Go value. Edges carry a float64 Weight.
// Infinity is the sentinel used by algorithms for "unreached" and is
// strictly greater than any finite path sum.
//
// Concurrency:
//
//	Every Graph method is safe for concurrent use; a single sync.RWMutex
//	guards vertices and adjacency. Algorithms only read, so many searches
//	may run against the same graph at once.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrBadWeight      - NaN edge weight.
package core
