// SPDX-License-Identifier: MIT

package fibheap

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyQueue indicates Dequeue or Peek was called on an empty heap.
	ErrEmptyQueue = errors.New("fibheap: queue is empty")

	// ErrDuplicateKey indicates the key is already enqueued.
	ErrDuplicateKey = errors.New("fibheap: key already present")

	// ErrKeyNotFound indicates the key is not (or no longer) enqueued.
	ErrKeyNotFound = errors.New("fibheap: key not found")

	// ErrInvalidDecreaseKey indicates DecreaseKey was asked to raise a priority.
	ErrInvalidDecreaseKey = errors.New("fibheap: new priority is greater than current priority")

	// ErrInvalidPriority indicates a priority that is not equal to itself (NaN).
	ErrInvalidPriority = errors.New("fibheap: priority is unordered (NaN)")
)
