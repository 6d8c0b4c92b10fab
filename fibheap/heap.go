// SPDX-License-Identifier: MIT

package fibheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// nilHandle marks an absent link in the arena.
const nilHandle = -1

// node is one arena slot. All links are handles into Heap.nodes.
type node[K comparable, P constraints.Ordered] struct {
	key      K
	priority P

	parent int // nilHandle for roots
	child  int // any one child; children form a circular list
	left   int // previous sibling in a circular list
	right  int // next sibling in a circular list

	degree int  // number of children
	mark   bool // lost a child since it last became a child itself
}

// Heap is a Fibonacci min-heap over keys K with priorities P.
// The zero value is not usable; construct with New.
type Heap[K comparable, P constraints.Ordered] struct {
	nodes []node[K, P] // arena
	free  []int        // recycled handles
	index map[K]int    // key -> handle of live entries
	min   int          // handle of the minimum root, nilHandle when empty

	// degrees is scratch space reused by consolidate.
	degrees []int
}

// Option configures a Heap at construction time.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates room for n entries.
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("fibheap: WithCapacity(n<0)")
	}
	return func(c *config) { c.capacity = n }
}

// New returns an empty heap.
func New[K comparable, P constraints.Ordered](opts ...Option) *Heap[K, P] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[K, P]{
		nodes: make([]node[K, P], 0, cfg.capacity),
		index: make(map[K]int, cfg.capacity),
		min:   nilHandle,
	}
}

// Len reports the number of enqueued entries.
func (h *Heap[K, P]) Len() int { return len(h.index) }

// Empty reports whether the heap holds no entries.
func (h *Heap[K, P]) Empty() bool { return h.min == nilHandle }

// Contains reports whether k is currently enqueued.
func (h *Heap[K, P]) Contains(k K) bool {
	_, ok := h.index[k]
	return ok
}

// Lookup returns the current priority of k without removing it.
// ok is false if k is not enqueued.
func (h *Heap[K, P]) Lookup(k K) (p P, ok bool) {
	x, ok := h.index[k]
	if !ok {
		return p, false
	}
	return h.nodes[x].priority, true
}

// Enqueue inserts k with priority p.
// Returns ErrDuplicateKey if k is already present and ErrInvalidPriority
// if p is NaN.
// Complexity: O(1) amortized.
func (h *Heap[K, P]) Enqueue(k K, p P) error {
	if p != p { // NaN
		return fmt.Errorf("%w: %v", ErrInvalidPriority, k)
	}
	if _, exists := h.index[k]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
	}

	x := h.alloc()
	n := &h.nodes[x]
	n.key, n.priority = k, p
	h.index[k] = x
	h.addRoot(x)

	return nil
}

// Peek returns the minimum entry without removing it.
func (h *Heap[K, P]) Peek() (k K, p P, err error) {
	if h.min == nilHandle {
		return k, p, ErrEmptyQueue
	}
	n := &h.nodes[h.min]
	return n.key, n.priority, nil
}

// Dequeue removes and returns the entry with minimum priority.
// Returns ErrEmptyQueue if the heap is empty.
// Complexity: O(log n) amortized.
func (h *Heap[K, P]) Dequeue() (k K, p P, err error) {
	z := h.min
	if z == nilHandle {
		return k, p, ErrEmptyQueue
	}

	// Promote every child of z to the root list.
	if c := h.nodes[z].child; c != nilHandle {
		for _, x := range h.siblings(c) {
			h.nodes[x].parent = nilHandle
			h.nodes[x].mark = false
			h.splice(x, z)
		}
		h.nodes[z].child = nilHandle
		h.nodes[z].degree = 0
	}

	// Unlink z from the root list.
	zn := &h.nodes[z]
	if zn.right == z {
		h.min = nilHandle
	} else {
		h.nodes[zn.left].right = zn.right
		h.nodes[zn.right].left = zn.left
		h.min = zn.right
		h.consolidate()
	}

	k, p = zn.key, zn.priority
	delete(h.index, k)
	h.release(z)

	return k, p, nil
}

// DecreaseKey lowers the priority of k to p.
// Lowering to the current priority is a no-op.
// Returns ErrKeyNotFound if k is not enqueued, ErrInvalidPriority if p
// is NaN, and ErrInvalidDecreaseKey if p is greater than the current
// priority.
// Complexity: O(1) amortized.
func (h *Heap[K, P]) DecreaseKey(k K, p P) error {
	if p != p { // NaN
		return fmt.Errorf("%w: %v", ErrInvalidPriority, k)
	}
	x, ok := h.index[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	cur := h.nodes[x].priority
	if p > cur {
		return fmt.Errorf("%w: %v has %v, asked %v", ErrInvalidDecreaseKey, k, cur, p)
	}
	if p == cur {
		return nil
	}

	h.nodes[x].priority = p
	if y := h.nodes[x].parent; y != nilHandle && p < h.nodes[y].priority {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if p < h.nodes[h.min].priority {
		h.min = x
	}

	return nil
}

// Delete removes k regardless of its priority.
// Complexity: O(log n) amortized.
func (h *Heap[K, P]) Delete(k K) error {
	x, ok := h.index[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	if y := h.nodes[x].parent; y != nilHandle {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	// x is a root now; treat it as the minimum and extract it.
	h.min = x
	_, _, err := h.Dequeue()

	return err
}

// Merge moves every entry of other into h and leaves other empty.
// If any key of other is already in h, nothing is moved and
// ErrDuplicateKey is returned.
// Complexity: O(m) where m = other.Len(), since arenas are not shared.
func (h *Heap[K, P]) Merge(other *Heap[K, P]) error {
	if other == nil || other == h || other.Empty() {
		return nil
	}
	for k := range other.index {
		if _, dup := h.index[k]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
	}

	// Allocate first so later appends cannot move nodes we still write.
	remap := make(map[int]int, len(other.index))
	for _, oh := range other.index {
		remap[oh] = h.alloc()
	}
	move := func(oh int) int {
		if oh == nilHandle {
			return nilHandle
		}
		return remap[oh]
	}
	for oh, nh := range remap {
		on := other.nodes[oh]
		h.nodes[nh] = node[K, P]{
			key:      on.key,
			priority: on.priority,
			parent:   move(on.parent),
			child:    move(on.child),
			left:     move(on.left),
			right:    move(on.right),
			degree:   on.degree,
			mark:     on.mark,
		}
		h.index[on.key] = nh
	}

	om := remap[other.min]
	if h.min == nilHandle {
		h.min = om
	} else {
		// Splice the two circular root lists together.
		a, b := h.min, om
		aRight, bLeft := h.nodes[a].right, h.nodes[b].left
		h.nodes[a].right = b
		h.nodes[b].left = a
		h.nodes[bLeft].right = aRight
		h.nodes[aRight].left = bLeft
		if h.nodes[om].priority < h.nodes[h.min].priority {
			h.min = om
		}
	}

	other.reset()

	return nil
}

// ---- internals ----

func (h *Heap[K, P]) alloc() int {
	if n := len(h.free); n > 0 {
		x := h.free[n-1]
		h.free = h.free[:n-1]
		h.nodes[x] = node[K, P]{parent: nilHandle, child: nilHandle, left: x, right: x}
		return x
	}
	x := len(h.nodes)
	h.nodes = append(h.nodes, node[K, P]{parent: nilHandle, child: nilHandle, left: x, right: x})
	return x
}

func (h *Heap[K, P]) release(x int) {
	h.nodes[x] = node[K, P]{parent: nilHandle, child: nilHandle, left: nilHandle, right: nilHandle}
	h.free = append(h.free, x)
}

func (h *Heap[K, P]) reset() {
	h.nodes = h.nodes[:0]
	h.free = h.free[:0]
	h.index = make(map[K]int)
	h.min = nilHandle
}

// addRoot inserts the detached node x into the root list and updates min.
func (h *Heap[K, P]) addRoot(x int) {
	if h.min == nilHandle {
		h.nodes[x].left, h.nodes[x].right = x, x
		h.min = x
		return
	}
	h.splice(x, h.min)
	if h.nodes[x].priority < h.nodes[h.min].priority {
		h.min = x
	}
}

// splice links x into the circular list containing at, right after at.
func (h *Heap[K, P]) splice(x, at int) {
	next := h.nodes[at].right
	h.nodes[x].left = at
	h.nodes[x].right = next
	h.nodes[at].right = x
	h.nodes[next].left = x
}

// siblings snapshots the circular list starting at x.
func (h *Heap[K, P]) siblings(x int) []int {
	out := []int{x}
	for y := h.nodes[x].right; y != x; y = h.nodes[y].right {
		out = append(out, y)
	}
	return out
}

// consolidate links roots of equal degree until all degrees are distinct,
// then rebuilds the root list and locates the new minimum.
func (h *Heap[K, P]) consolidate() {
	roots := h.siblings(h.min)
	for i := range h.degrees {
		h.degrees[i] = nilHandle
	}

	for _, w := range roots {
		x := w
		d := h.nodes[x].degree
		for d < len(h.degrees) && h.degrees[d] != nilHandle {
			y := h.degrees[d]
			if h.nodes[y].priority < h.nodes[x].priority {
				x, y = y, x
			}
			h.link(y, x)
			h.degrees[d] = nilHandle
			d++
		}
		for len(h.degrees) <= d {
			h.degrees = append(h.degrees, nilHandle)
		}
		h.degrees[d] = x
	}

	h.min = nilHandle
	for _, x := range h.degrees {
		if x == nilHandle {
			continue
		}
		h.nodes[x].left, h.nodes[x].right = x, x
		h.addRoot(x)
	}
}

// link makes root y a child of root x.
func (h *Heap[K, P]) link(y, x int) {
	yn := &h.nodes[y]
	yn.parent = x
	yn.mark = false
	if c := h.nodes[x].child; c == nilHandle {
		yn.left, yn.right = y, y
		h.nodes[x].child = y
	} else {
		h.splice(y, c)
	}
	h.nodes[x].degree++
}

// cut detaches x from its parent y and moves it to the root list.
func (h *Heap[K, P]) cut(x, y int) {
	xn := &h.nodes[x]
	if xn.right == x {
		h.nodes[y].child = nilHandle
	} else {
		h.nodes[xn.left].right = xn.right
		h.nodes[xn.right].left = xn.left
		if h.nodes[y].child == x {
			h.nodes[y].child = xn.right
		}
	}
	h.nodes[y].degree--

	xn.parent = nilHandle
	xn.mark = false
	h.splice(x, h.min)
}

// cascadingCut walks up from y cutting every marked ancestor.
func (h *Heap[K, P]) cascadingCut(y int) {
	for {
		z := h.nodes[y].parent
		if z == nilHandle {
			return
		}
		if !h.nodes[y].mark {
			h.nodes[y].mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}
