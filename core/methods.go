// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// AddVertex registers v. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// AddEdge stores the edge u→v with weight w, registering both endpoints.
// If u→v already exists its weight is replaced. In undirected graphs the
// mirror v→u is stored as well.
// Returns ErrBadWeight for NaN weights and ErrLoopNotAllowed for u == v
// unless the graph was built WithLoops.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: %v→%v", ErrBadWeight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, u)
	}

	g.ensureVertex(u)
	g.ensureVertex(v)
	g.setArc(u, v, w)
	if g.undirected && u != v {
		g.setArc(v, u, w)
	}

	return nil
}

// HasVertex reports whether v is registered.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]
	return ok
}

// HasEdge reports whether the edge u→v exists.
func (g *Graph[V]) HasEdge(u, v V) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Edge returns the edge u→v, if present.
func (g *Graph[V]) Edge(u, v V) (Edge[V], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[u][v]
	return e, ok
}

// Adjacent returns a copy of u's adjacency mapping (destination → edge).
// Returns ErrVertexNotFound if u is not registered.
// Complexity: O(deg(u)).
func (g *Graph[V]) Adjacent(u V) (map[V]Edge[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[u]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	out := make(map[V]Edge[V], len(adj))
	for v, e := range adj {
		out[v] = e
	}

	return out, nil
}

// Neighbors returns u's outgoing edges in insertion order.
// Returns ErrVertexNotFound if u is not registered.
// Complexity: O(deg(u)).
func (g *Graph[V]) Neighbors(u V) ([]Edge[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[u]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	dests := g.neighborOrder[u]
	out := make([]Edge[V], 0, len(dests))
	for _, v := range dests {
		out = append(out, adj[v])
	}

	return out, nil
}

// Vertices returns every registered vertex in insertion order,
// including vertices without any edges.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)
	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored directed edges.
// An undirected edge between distinct vertices counts twice.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}

// HasNegativeWeight reports whether any stored edge has weight < 0.
// Complexity: O(V + E).
func (g *Graph[V]) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, adj := range g.adjacency {
		for _, e := range adj {
			if e.Weight < 0 {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of g with the same options.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[V]{
		undirected:    g.undirected,
		allowLoops:    g.allowLoops,
		order:         make([]V, len(g.order)),
		adjacency:     make(map[V]map[V]Edge[V], len(g.adjacency)),
		neighborOrder: make(map[V][]V, len(g.neighborOrder)),
		arcCount:      g.arcCount,
	}
	copy(c.order, g.order)
	for u, adj := range g.adjacency {
		m := make(map[V]Edge[V], len(adj))
		for v, e := range adj {
			m[v] = e
		}
		c.adjacency[u] = m
		c.neighborOrder[u] = append([]V(nil), g.neighborOrder[u]...)
	}

	return c
}

// FromAdjacency builds a graph from a nested weight mapping adj[u][v] = w.
// Every key of adj and of each inner map becomes a vertex, so a vertex
// with no outgoing edges may be listed as adj[v] = nil. Self-loops are
// permitted. Vertex order follows Go map iteration and is unspecified.
func FromAdjacency[V comparable](adj map[V]map[V]float64, opts ...GraphOption) (*Graph[V], error) {
	g := NewGraph[V](append([]GraphOption{WithLoops()}, opts...)...)
	for u, out := range adj {
		g.AddVertex(u)
		for v, w := range out {
			if err := g.AddEdge(u, v, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ensureVertex registers v if absent. Caller holds g.mu.
func (g *Graph[V]) ensureVertex(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = make(map[V]Edge[V])
	g.order = append(g.order, v)
}

// setArc stores u→v, replacing any previous weight. Caller holds g.mu.
func (g *Graph[V]) setArc(u, v V, w float64) {
	if _, exists := g.adjacency[u][v]; !exists {
		g.neighborOrder[u] = append(g.neighborOrder[u], v)
		g.arcCount++
	}
	g.adjacency[u][v] = Edge[V]{From: u, To: v, Weight: w}
}
