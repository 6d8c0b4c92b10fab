// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/fibheap"
)

// Search returns the shortest distance from start to end using a
// Fibonacci heap, stopping as soon as end is dequeued.
//
// Returns:
//
//   - dist: the shortest distance, or core.Infinity when ok is false.
//   - ok:   false if end is unreachable (or beyond MaxDistance).
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrHookType, or ErrNegativeWeight.
//
// When start == end the first dequeue is (start, 0) and the result is 0
// with no relaxation performed.
//
// Complexity: O(E + V log V) time, O(V) space.
func Search[V comparable](g *core.Graph[V], start, end V, opts ...Option) (float64, bool, error) {
	// 1) Build Options and resolve the typed OnSettle hook.
	cfg, hook, err := resolve[V](opts)
	if err != nil {
		return core.Infinity, false, err
	}
	// 2) Validate graph and both endpoints.
	if err = validate(g, start, end); err != nil {
		return core.Infinity, false, err
	}

	// 3) Enqueue every vertex: start at 0, the rest at Infinity.
	r, err := newFibRunner(g, start, cfg, hook, false)
	if err != nil {
		return core.Infinity, false, err
	}
	for {
		// 4) Extract the minimum; stop once only unreachable vertices remain.
		u, d, done, err := r.next()
		if err != nil {
			return core.Infinity, false, err
		}
		if done {
			return core.Infinity, false, nil
		}
		// 5) d is final for u. Exit early when u is the target.
		r.settle(u, d)
		if u == end {
			return d, true, nil
		}
		// 6) Relax u's outgoing edges.
		if err = r.relax(u, d); err != nil {
			return core.Infinity, false, err
		}
	}
}

// ShortestPaths returns the shortest distance from start to every vertex
// of g using a Fibonacci heap. Unreachable vertices map to core.Infinity.
//
// Returns ErrNilGraph, ErrVertexNotFound, ErrHookType, or ErrNegativeWeight
// (wrapped with the offending edge). On error no table is returned.
//
// Complexity: O(E + V log V) time, O(V) space.
func ShortestPaths[V comparable](g *core.Graph[V], start V, opts ...Option) (map[V]float64, error) {
	// 1) Build Options and resolve the typed OnSettle hook.
	cfg, hook, err := resolve[V](opts)
	if err != nil {
		return nil, err
	}
	// 2) Validate graph and start vertex.
	if err = validate(g, start); err != nil {
		return nil, err
	}

	// 3) Enqueue every vertex: start at 0, the rest at Infinity.
	r, err := newFibRunner(g, start, cfg, hook, false)
	if err != nil {
		return nil, err
	}
	for {
		// 4) Extract the minimum; stop once only unreachable vertices remain.
		u, d, done, err := r.next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// 5) Finalize u, then relax its outgoing edges.
		r.settle(u, d)
		if err = r.relax(u, d); err != nil {
			return nil, err
		}
	}

	// 6) Fill Infinity for every vertex that was never settled.
	return r.table(), nil
}

// Path returns one shortest route from start to end (both included) and
// its cost. Returns ErrNoPath if end is unreachable, plus the same
// validation errors as Search.
//
// Complexity: O(E + V log V) time, O(V) space.
func Path[V comparable](g *core.Graph[V], start, end V, opts ...Option) ([]V, float64, error) {
	cfg, hook, err := resolve[V](opts)
	if err != nil {
		return nil, core.Infinity, err
	}
	if err = validate(g, start, end); err != nil {
		return nil, core.Infinity, err
	}

	r, err := newFibRunner(g, start, cfg, hook, true)
	if err != nil {
		return nil, core.Infinity, err
	}
	for {
		u, d, done, err := r.next()
		if err != nil {
			return nil, core.Infinity, err
		}
		if done {
			return nil, core.Infinity, fmt.Errorf("%w: %v→%v", ErrNoPath, start, end)
		}
		r.settle(u, d)
		if u == end {
			return r.route(start, end), d, nil
		}
		if err = r.relax(u, d); err != nil {
			return nil, core.Infinity, err
		}
	}
}

// validate checks the graph and that every listed vertex exists.
func validate[V comparable](g *core.Graph[V], vs ...V) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, v := range vs {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
		}
	}
	return nil
}

// tracer forwards debug events to an optional logger.
// Call sites check log != nil before building fields.
type tracer struct {
	log logrus.FieldLogger
}

func (t tracer) debug(msg string, fields logrus.Fields) {
	if t.log != nil {
		t.log.WithFields(fields).Debug(msg)
	}
}

// fibRunner holds the mutable state for a single Fibonacci-heap run.
type fibRunner[V comparable] struct {
	tracer
	g        *core.Graph[V]            // read-only input graph
	vertices []V                       // snapshot of g's vertices, in order
	cfg      Options                   // resolved options
	hook     func(V, float64)          // OnSettle hook, may be nil
	pq       *fibheap.Heap[V, float64] // vertices not yet settled
	dist     map[V]float64             // finalized distances only
	prev     map[V]V                   // nil unless routes are tracked
}

// newFibRunner enqueues every vertex: start at 0, the rest at core.Infinity.
func newFibRunner[V comparable](g *core.Graph[V], start V, cfg Options, hook func(V, float64), trackPrev bool) (*fibRunner[V], error) {
	vertices := g.Vertices()
	r := &fibRunner[V]{
		tracer:   tracer{log: cfg.Logger},
		g:        g,
		vertices: vertices,
		cfg:      cfg,
		hook:     hook,
		pq:       fibheap.New[V, float64](fibheap.WithCapacity(len(vertices))),
		dist:     make(map[V]float64, len(vertices)),
	}
	if trackPrev {
		r.prev = make(map[V]V)
	}

	for _, v := range vertices {
		p := core.Infinity
		if v == start {
			p = 0
		}
		if err := r.pq.Enqueue(v, p); err != nil {
			return nil, fmt.Errorf("dijkstra: enqueue %v: %w", v, err)
		}
	}

	return r, nil
}

// next pops the minimum entry. done is true once the queue is drained or
// only unreachable (or capped) vertices remain; the popped vertex is then
// not settled.
func (r *fibRunner[V]) next() (u V, d float64, done bool, err error) {
	if r.pq.Empty() {
		return u, d, true, nil
	}
	u, d, err = r.pq.Dequeue()
	if err != nil {
		return u, d, false, err
	}
	if d == core.Infinity || d > r.cfg.MaxDistance {
		return u, d, true, nil
	}

	return u, d, false, nil
}

// settle finalizes u at distance d.
func (r *fibRunner[V]) settle(u V, d float64) {
	r.dist[u] = d
	if r.hook != nil {
		r.hook(u, d)
	}
	if r.log != nil {
		r.debug("settle", logrus.Fields{"vertex": u, "dist": d})
	}
}

// relax lowers the key of every still-queued neighbor reachable more
// cheaply through u.
func (r *fibRunner[V]) relax(u V, d float64) error {
	// 1) Retrieve u's outgoing edges in insertion order.
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	// 2) For each edge, reject negative weights, then try to improve e.To.
	for _, e := range edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		cur, queued := r.pq.Lookup(e.To)
		if !queued {
			continue // already final
		}
		nd := d + e.Weight
		if nd >= cur {
			continue
		}
		if err = r.pq.DecreaseKey(e.To, nd); err != nil {
			return fmt.Errorf("dijkstra: relax %v→%v: %w", e.From, e.To, err)
		}
		if r.prev != nil {
			r.prev[e.To] = u
		}
		if r.log != nil {
			r.debug("relax", logrus.Fields{"from": u, "to": e.To, "dist": nd})
		}
	}

	return nil
}

// table returns the finalized distances with core.Infinity for the rest.
func (r *fibRunner[V]) table() map[V]float64 {
	for _, v := range r.vertices {
		if _, ok := r.dist[v]; !ok {
			r.dist[v] = core.Infinity
		}
	}
	return r.dist
}

// route walks predecessors back from end and returns start…end.
func (r *fibRunner[V]) route(start, end V) []V {
	path := []V{end}
	for v := end; v != start; {
		v = r.prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
