// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Infinity is the distance reported for unreached vertices.
// It compares greater than every finite sum and never overflows.
//
// Infinity is a variable only because Go has no +Inf constant. It is
// read-only: searches compare against it to detect unreached vertices,
// so reassigning it corrupts every result.
var Infinity = math.Inf(1)

// Edge is a directed, weighted connection From→To.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(*options)

type options struct {
	undirected bool
	allowLoops bool
}

// WithUndirected makes AddEdge store both u→v and v→u.
func WithUndirected() GraphOption {
	return func(o *options) { o.undirected = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *options) { o.allowLoops = true }
}

// Graph is a weighted adjacency structure keyed by vertex.
//
// adjacency[u][v] holds the single edge u→v; at most one edge exists per
// ordered pair and AddEdge on an existing pair replaces its weight.
// order and neighborOrder record insertion order so that iteration is
// deterministic.
type Graph[V comparable] struct {
	mu sync.RWMutex

	undirected bool
	allowLoops bool

	order         []V                 // every vertex, in insertion order
	adjacency     map[V]map[V]Edge[V] // u → v → edge
	neighborOrder map[V][]V           // u → destinations in insertion order
	arcCount      int                 // number of stored u→v entries
}

// NewGraph creates an empty directed graph. By default self-loops are rejected.
// Complexity: O(1).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V]{
		undirected:    o.undirected,
		allowLoops:    o.allowLoops,
		adjacency:     make(map[V]map[V]Edge[V]),
		neighborOrder: make(map[V][]V),
	}
}

// Undirected reports whether AddEdge mirrors every edge.
func (g *Graph[V]) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}

// Looped reports whether self-loops are permitted.
func (g *Graph[V]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
