// SPDX-License-Identifier: MIT

package core

import "fmt"

// walker holds breadth-first traversal state for Reachable.
type walker[V comparable] struct {
	g       *Graph[V]
	queue   []V
	visited map[V]bool
	order   []V
}

// Reachable returns every vertex reachable from start (start included)
// in breadth-first order, following edges in insertion order.
// Edge weights are ignored. Returns ErrVertexNotFound if start is absent.
// Complexity: O(V + E).
func (g *Graph[V]) Reachable(start V) ([]V, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[V]{
		g:       g,
		queue:   make([]V, 0, n),
		visited: make(map[V]bool, n),
		order:   make([]V, 0, n),
	}
	w.enqueue(start)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.order, nil
}

func (w *walker[V]) enqueue(v V) {
	w.visited[v] = true
	w.order = append(w.order, v)
	w.queue = append(w.queue, v)
}

func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]

		edges, err := w.g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !w.visited[e.To] {
				w.enqueue(e.To)
			}
		}
	}
	return nil
}
