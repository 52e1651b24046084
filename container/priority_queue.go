package container

import "container/heap"

// PriorityQueue is a min-priority queue: Pop always yields the item with the
// smallest priority. The zero value is empty and ready for use.
//
// Duplicate pushes of one item are allowed and expected; re-pushing with an
// improved priority is the supported decrease-key strategy; the superseded
// entry surfaces later and the consumer discards it (lazy invalidation).
type PriorityQueue[T any] struct {
	h pqHeap[T]
}

// Push inserts item with the given priority. O(log n).
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.h, pqEntry[T]{item: item, priority: priority})
}

// Pop removes and returns the minimum-priority item and its priority.
// Returns ErrEmptyContainer when the queue is empty. O(log n).
func (pq *PriorityQueue[T]) Pop() (T, float64, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, 0, ErrEmptyContainer
	}
	e := heap.Pop(&pq.h).(pqEntry[T])

	return e.item, e.priority, nil
}

// Peek returns the minimum-priority item without removing it.
// Returns ErrEmptyContainer when the queue is empty. O(1).
func (pq *PriorityQueue[T]) Peek() (T, float64, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, 0, ErrEmptyContainer
	}
	e := pq.h[0]

	return e.item, e.priority, nil
}

// Len returns the number of queued entries, stale duplicates included. O(1).
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// Empty reports whether the queue holds no entries.
func (pq *PriorityQueue[T]) Empty() bool { return pq.h.Len() == 0 }

// pqEntry pairs an item with its priority key.
type pqEntry[T any] struct {
	item     T
	priority float64
}

// pqHeap implements heap.Interface ordered by ascending priority.
type pqHeap[T any] []pqEntry[T]

func (h pqHeap[T]) Len() int           { return len(h) }
func (h pqHeap[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h pqHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[T]) Push(x any) { *h = append(*h, x.(pqEntry[T])) }

func (h *pqHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
