// SPDX-License-Identifier: MIT

// Package fibheap provides a generic Fibonacci heap: a min-priority queue
// keyed by arbitrary comparable identifiers that supports a true
// decrease-key operation.
//
// Overview:
//
//   - Enqueue and DecreaseKey run in O(1) amortized time.
//   - Dequeue (extract-min) and Delete run in O(log n) amortized time.
//   - Lookup, Contains, Len and Empty are O(1).
//
// Together these bounds are what let Dijkstra's algorithm run in
// O(E + V log V) instead of O(E log V).
//
// Layout:
//
//	The heap forest is stored in an arena ([]node) and every structural link
//	(parent, child, left and right siblings) is an int handle into that arena,
//	with -1 meaning "none". Keys map to handles through an index, and freed
//	handles are recycled. No node ever points at another node directly.
//
// Tie-break policy:
//
//	Among entries of equal priority the one met first while scanning the
//	root list wins. The policy is deterministic for a fixed sequence of
//	operations, but no ordering beyond "minimum first" is promised.
//
// Errors (sentinel, compare with errors.Is):
//
//   - ErrEmptyQueue:         Dequeue or Peek on an empty heap.
//   - ErrDuplicateKey:       Enqueue of a key already present.
//   - ErrKeyNotFound:        DecreaseKey or Delete of an absent key.
//   - ErrInvalidDecreaseKey: DecreaseKey with a priority above the current one.
//   - ErrInvalidPriority:    Enqueue or DecreaseKey with a NaN priority.
//
// Thread safety:
//
//	A Heap is not safe for concurrent use. Callers that share one across
//	goroutines must synchronize externally.
//
// Example:
//
//	h := fibheap.New[string, float64]()
//	_ = h.Enqueue("A", 4)
//	_ = h.Enqueue("B", 7)
//	_ = h.DecreaseKey("B", 1)
//	k, p, _ := h.Dequeue() // "B", 1
package fibheap
