// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fibpath/core"
)

// SearchBinaryHeap is Search implemented on a binary heap with lazy
// decrease-key. On non-negative graphs it returns exactly what Search does.
//
// Complexity: O(E log V) time, O(V + E) space.
func SearchBinaryHeap[V comparable](g *core.Graph[V], start, end V, opts ...Option) (float64, bool, error) {
	// 1) Build Options and resolve the typed OnSettle hook.
	cfg, hook, err := resolve[V](opts)
	if err != nil {
		return core.Infinity, false, err
	}
	// 2) Validate graph and both endpoints.
	if err = validate(g, start, end); err != nil {
		return core.Infinity, false, err
	}

	// 3) Seed the heap with (start, 0) only.
	r := newLazyRunner(g, start, cfg, hook)
	for {
		// 4) Pop the closest unvisited vertex; stale entries are skipped.
		u, d, done := r.next()
		if done {
			return core.Infinity, false, nil
		}
		// 5) d is final for u. Exit early when u is the target.
		r.settle(u, d)
		if u == end {
			return d, true, nil
		}
		// 6) Push improved neighbors.
		if err = r.relax(u, d); err != nil {
			return core.Infinity, false, err
		}
	}
}

// ShortestPathsBinaryHeap is ShortestPaths implemented on a binary heap
// with lazy decrease-key. It applies the same negative-weight check as
// ShortestPaths, so both return identical tables or the same error class.
//
// Complexity: O(E log V) time, O(V + E) space.
func ShortestPathsBinaryHeap[V comparable](g *core.Graph[V], start V, opts ...Option) (map[V]float64, error) {
	// 1) Build Options and resolve the typed OnSettle hook.
	cfg, hook, err := resolve[V](opts)
	if err != nil {
		return nil, err
	}
	// 2) Validate graph and start vertex.
	if err = validate(g, start); err != nil {
		return nil, err
	}

	// 3) Seed the heap with (start, 0) only.
	r := newLazyRunner(g, start, cfg, hook)
	for {
		// 4) Pop the closest unvisited vertex; stale entries are skipped.
		u, d, done := r.next()
		if done {
			break
		}
		// 5) Finalize u, then push improved neighbors.
		r.settle(u, d)
		if err = r.relax(u, d); err != nil {
			return nil, err
		}
	}

	// 6) Report Infinity for every vertex that was never visited.
	return r.table(), nil
}

// lazyRunner holds the mutable state for a single binary-heap run.
type lazyRunner[V comparable] struct {
	tracer
	g       *core.Graph[V]   // read-only input graph
	cfg     Options          // resolved options
	hook    func(V, float64) // OnSettle hook, may be nil
	dist    map[V]float64    // tentative distances; core.Infinity if unseen
	visited map[V]bool       // finalized vertices
	pq      nodePQ[V]        // may hold superseded entries
}

func newLazyRunner[V comparable](g *core.Graph[V], start V, cfg Options, hook func(V, float64)) *lazyRunner[V] {
	vertices := g.Vertices()
	r := &lazyRunner[V]{
		tracer:  tracer{log: cfg.Logger},
		g:       g,
		cfg:     cfg,
		hook:    hook,
		dist:    make(map[V]float64, len(vertices)),
		visited: make(map[V]bool, len(vertices)),
		pq:      make(nodePQ[V], 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = core.Infinity
	}
	r.dist[start] = 0
	heap.Push(&r.pq, nodeItem[V]{id: start, dist: 0})

	return r
}

// next pops until it finds a vertex not yet visited. Stale entries are
// dropped silently. done is true when the heap drains or MaxDistance is
// exceeded.
func (r *lazyRunner[V]) next() (u V, d float64, done bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[V])
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.cfg.MaxDistance {
			return item.id, item.dist, true
		}
		return item.id, item.dist, false
	}
	return u, d, true
}

func (r *lazyRunner[V]) settle(u V, d float64) {
	r.visited[u] = true
	if r.hook != nil {
		r.hook(u, d)
	}
	if r.log != nil {
		r.debug("settle", logrus.Fields{"vertex": u, "dist": d})
	}
}

// relax pushes a fresh entry for every unvisited neighbor whose distance
// improves through u.
func (r *lazyRunner[V]) relax(u V, d float64) error {
	// 1) Retrieve u's outgoing edges in insertion order.
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	// 2) Reject negative weights, then push a fresh entry on improvement.
	for _, e := range edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if r.visited[e.To] {
			continue
		}
		nd := d + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		heap.Push(&r.pq, nodeItem[V]{id: e.To, dist: nd})
		if r.log != nil {
			r.debug("relax", logrus.Fields{"from": u, "to": e.To, "dist": nd})
		}
	}

	return nil
}

// table reports finalized distances; anything not visited is core.Infinity.
// Under MaxDistance a vertex may hold a finite tentative distance without
// being settled, so it is reset here.
func (r *lazyRunner[V]) table() map[V]float64 {
	for v := range r.dist {
		if !r.visited[v] {
			r.dist[v] = core.Infinity
		}
	}
	return r.dist
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
// Superseded entries stay in the heap and are skipped on pop.
type nodePQ[V comparable] []nodeItem[V]

func (pq nodePQ[V]) Len() int           { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(nodeItem[V])) }

func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
