// SPDX-License-Identifier: MIT

package fibheap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibpath/fibheap"
)

func TestHeap_EmptyQueue(t *testing.T) {
	h := fibheap.New[string, float64]()
	require.True(t, h.Empty())
	require.Zero(t, h.Len())

	_, _, err := h.Dequeue()
	require.ErrorIs(t, err, fibheap.ErrEmptyQueue)

	_, _, err = h.Peek()
	require.ErrorIs(t, err, fibheap.ErrEmptyQueue)
}

func TestHeap_EnqueueDequeueOrder(t *testing.T) {
	h := fibheap.New[string, int]()
	require.NoError(t, h.Enqueue("c", 3))
	require.NoError(t, h.Enqueue("a", 1))
	require.NoError(t, h.Enqueue("d", 4))
	require.NoError(t, h.Enqueue("b", 2))
	require.Equal(t, 4, h.Len())

	k, p, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, p)

	var got []string
	for !h.Empty() {
		k, _, err := h.Dequeue()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Zero(t, h.Len())
}

func TestHeap_DuplicateKey(t *testing.T) {
	h := fibheap.New[string, int]()
	require.NoError(t, h.Enqueue("a", 1))
	err := h.Enqueue("a", 5)
	require.ErrorIs(t, err, fibheap.ErrDuplicateKey)

	p, ok := h.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, p, "failed enqueue must not touch the stored priority")
}

func TestHeap_DecreaseKey(t *testing.T) {
	h := fibheap.New[string, float64]()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, h.Enqueue(k, math.Inf(1)))
	}
	require.NoError(t, h.Enqueue("s", 0))

	// Force a consolidation so that some entries become children.
	k, _, err := h.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "s", k)

	require.NoError(t, h.DecreaseKey("d", 2))
	require.NoError(t, h.DecreaseKey("b", 1))
	require.NoError(t, h.DecreaseKey("d", 0.5))

	p, ok := h.Lookup("d")
	require.True(t, ok)
	assert.Equal(t, 0.5, p)

	k, p, err = h.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "d", k)
	assert.Equal(t, 0.5, p)

	k, p, err = h.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "b", k)
	assert.Equal(t, 1.0, p)
}

func TestHeap_DecreaseKeyErrors(t *testing.T) {
	h := fibheap.New[int, int]()
	require.NoError(t, h.Enqueue(1, 10))

	require.ErrorIs(t, h.DecreaseKey(1, 11), fibheap.ErrInvalidDecreaseKey)
	require.NoError(t, h.DecreaseKey(1, 10), "equal priority is a no-op")
	require.ErrorIs(t, h.DecreaseKey(2, 1), fibheap.ErrKeyNotFound)

	_, _, err := h.Dequeue()
	require.NoError(t, err)
	require.ErrorIs(t, h.DecreaseKey(1, 0), fibheap.ErrKeyNotFound, "dequeued keys are gone")
	assert.False(t, h.Contains(1))
}

func TestHeap_Delete(t *testing.T) {
	h := fibheap.New[int, int]()
	for i := 0; i < 16; i++ {
		require.NoError(t, h.Enqueue(i, i))
	}
	_, _, err := h.Dequeue() // builds child lists
	require.NoError(t, err)

	require.NoError(t, h.Delete(7))
	require.NoError(t, h.Delete(1))
	require.ErrorIs(t, h.Delete(7), fibheap.ErrKeyNotFound)

	var got []int
	for !h.Empty() {
		k, _, err := h.Dequeue()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15}, got)
}

func TestHeap_Merge(t *testing.T) {
	a := fibheap.New[string, int]()
	b := fibheap.New[string, int]()
	require.NoError(t, a.Enqueue("a1", 5))
	require.NoError(t, a.Enqueue("a2", 1))
	require.NoError(t, b.Enqueue("b1", 0))
	require.NoError(t, b.Enqueue("b2", 3))

	require.NoError(t, a.Merge(b))
	assert.True(t, b.Empty())
	assert.Zero(t, b.Len())
	require.Equal(t, 4, a.Len())

	require.NoError(t, a.DecreaseKey("b2", -1))

	var got []string
	for !a.Empty() {
		k, _, err := a.Dequeue()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []string{"b2", "b1", "a2", "a1"}, got)
}

func TestHeap_MergeDuplicateRejected(t *testing.T) {
	a := fibheap.New[string, int]()
	b := fibheap.New[string, int]()
	require.NoError(t, a.Enqueue("x", 1))
	require.NoError(t, b.Enqueue("x", 2))
	require.NoError(t, b.Enqueue("y", 3))

	require.ErrorIs(t, a.Merge(b), fibheap.ErrDuplicateKey)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestHeap_NaNPriorityRejected(t *testing.T) {
	h := fibheap.New[string, float64]()
	require.ErrorIs(t, h.Enqueue("a", math.NaN()), fibheap.ErrInvalidPriority)
	assert.True(t, h.Empty())

	require.NoError(t, h.Enqueue("a", 3))
	require.NoError(t, h.Enqueue("b", 1))
	require.ErrorIs(t, h.DecreaseKey("a", math.NaN()), fibheap.ErrInvalidPriority)

	p, ok := h.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 3.0, p, "a rejected decrease leaves the priority unchanged")

	k, _, err := h.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "b", k)
}

func TestHeap_WithCapacityPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { fibheap.WithCapacity(-1) })
}

// TestHeap_RandomizedAgainstSort interleaves enqueues, decreases,
// deletes, merges and dequeues and checks every dequeue against a
// brute-force minimum.
func TestHeap_RandomizedAgainstSort(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		rng := rand.New(rand.NewSource(seed))
		h := fibheap.New[int, int](fibheap.WithCapacity(64))
		live := map[int]int{}
		next := 0
		last := math.MinInt

		// priority keeps new priorities at or above the last dequeue so
		// the monotone check stays meaningful.
		priority := func(p int) int {
			if p < last {
				return last
			}
			return p
		}

		for step := 0; step < 5000; step++ {
			switch op := rng.Intn(20); {
			case op < 7:
				p := priority(rng.Intn(1000))
				require.NoError(t, h.Enqueue(next, p))
				live[next] = p
				next++
			case op < 12 && len(live) > 0:
				k := anyKey(live, rng)
				p := priority(live[k] - rng.Intn(50))
				require.NoError(t, h.DecreaseKey(k, p))
				live[k] = p
			case op < 14 && len(live) > 0:
				k := anyKey(live, rng)
				require.NoError(t, h.Delete(k))
				require.False(t, h.Contains(k))
				delete(live, k)
			case op < 15:
				other := fibheap.New[int, int]()
				for i := rng.Intn(8); i > 0; i-- {
					p := priority(rng.Intn(1000))
					require.NoError(t, other.Enqueue(next, p))
					live[next] = p
					next++
				}
				// Dequeue one so other has a consolidated tree to merge.
				if other.Len() > 1 {
					k, _, err := other.Dequeue()
					require.NoError(t, err)
					delete(live, k)
				}
				require.NoError(t, h.Merge(other))
				require.True(t, other.Empty())
			case len(live) > 0:
				k, p, err := h.Dequeue()
				require.NoError(t, err)
				require.Equal(t, minValue(live), p)
				require.Equal(t, live[k], p)
				require.GreaterOrEqual(t, p, last)
				last = p
				delete(live, k)
			}
			require.Equal(t, len(live), h.Len(), "seed %d step %d", seed, step)
		}

		for !h.Empty() {
			_, p, err := h.Dequeue()
			require.NoError(t, err)
			require.GreaterOrEqual(t, p, last)
			last = p
		}
	}
}

func anyKey(m map[int]int, rng *rand.Rand) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys[rng.Intn(len(keys))]
}

func minValue(m map[int]int) int {
	best := math.MaxInt
	for _, v := range m {
		if v < best {
			best = v
		}
	}
	return best
}
