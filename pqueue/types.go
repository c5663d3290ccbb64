// This file declares IndexedPriorityQueue, its sentinel errors, and
// the New constructor.
//
// Errors:
//
//	ErrEmpty - Top or Pop called on an empty queue.
//	ErrIDOutOfRange - id passed to Update is >= MaxSize.
package pqueue

import (
	"container/heap"
	"errors"
	"math"
)

// Sentinel errors for IndexedPriorityQueue operations.
var (
	// ErrEmpty indicates Top or Pop was called with no entries in the queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrIDOutOfRange indicates Update was called with id >= MaxSize.
	ErrIDOutOfRange = errors.New("pqueue: id out of range")
)

// idHeap is the container/heap.Interface backing IndexedPriorityQueue.
// ids holds the heap's current members; pos maps an id to its slot in
// ids, or -1 if the id is absent; key holds the current key for every
// id in [0, len(key)), valid whether or not the id is present.
type idHeap struct {
	ids []uint32
	pos []int
	key []int64
}

func (h *idHeap) Len() int { return len(h.ids) }

func (h *idHeap) Less(i, j int) bool { return h.key[h.ids[i]] < h.key[h.ids[j]] }

func (h *idHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

func (h *idHeap) Push(x any) {
	id := x.(uint32)
	h.pos[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *idHeap) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	h.pos[id] = -1

	return id
}

// IndexedPriorityQueue is a decrease-key min-heap over a fixed id
// space [0, MaxSize).
type IndexedPriorityQueue struct {
	maxSize uint32
	h       *idHeap
}

// New allocates an IndexedPriorityQueue over ids [0, maxSize), with
// every key initialised to +infinity and the heap empty.
//
// Complexity: O(maxSize).
func New(maxSize uint32) *IndexedPriorityQueue {
	q := &IndexedPriorityQueue{
		maxSize: maxSize,
		h: &idHeap{
			ids: make([]uint32, 0, maxSize),
			pos: make([]int, maxSize),
			key: make([]int64, maxSize),
		},
	}
	q.Init()

	return q
}

// Init resets every key to +infinity and empties the heap.
//
// Complexity: O(MaxSize).
func (q *IndexedPriorityQueue) Init() {
	q.h.ids = q.h.ids[:0]
	for i := range q.h.pos {
		q.h.pos[i] = -1
		q.h.key[i] = math.MaxInt64
	}
}

// MaxSize returns the id-space size this queue was built with.
func (q *IndexedPriorityQueue) MaxSize() uint32 { return q.maxSize }

// Size returns the number of ids currently in the queue.
func (q *IndexedPriorityQueue) Size() int { return q.h.Len() }

// Empty reports whether the queue currently holds no ids.
func (q *IndexedPriorityQueue) Empty() bool { return q.h.Len() == 0 }

// Update lowers the key of id to min(current key, key), inserting id
// into the queue if it was absent. A key no lower than the current
// one is a no-op.
//
// Complexity: O(log n).
func (q *IndexedPriorityQueue) Update(id uint32, key int64) error {
	if id >= q.maxSize {
		return ErrIDOutOfRange
	}
	if key >= q.h.key[id] {
		return nil
	}
	q.h.key[id] = key
	if q.h.pos[id] == -1 {
		heap.Push(q.h, id)
	} else {
		heap.Fix(q.h, q.h.pos[id])
	}

	return nil
}

// Top returns the id with the minimum key, without removing it.
//
// Complexity: O(1).
func (q *IndexedPriorityQueue) Top() (uint32, error) {
	if q.h.Len() == 0 {
		return 0, ErrEmpty
	}

	return q.h.ids[0], nil
}

// Pop removes the id with the minimum key.
//
// Complexity: O(log n).
func (q *IndexedPriorityQueue) Pop() error {
	if q.h.Len() == 0 {
		return ErrEmpty
	}
	heap.Pop(q.h)

	return nil
}

// Value returns a read-only view of every id's current key, indexed
// by id; ids never inserted or already popped still read their last
// key (+infinity if never updated).
func (q *IndexedPriorityQueue) Value() []int64 {
	return q.h.key
}
