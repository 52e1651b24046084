package container

// Queue is a first-in, first-out container. The zero value is an empty
// queue ready for use.
//
// Backed by a slice with a moving head index; Enqueue and Dequeue are O(1)
// amortized.
type Queue[T any] struct {
	data []T
	head int
}

// Enqueue appends item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.data = append(q.data, item)
}

// Dequeue removes and returns the front item.
// Returns ErrEmptyContainer when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmptyContainer
	}

	item := q.data[q.head]
	q.data[q.head] = zero // release the reference
	q.head++
	if q.head == len(q.data) {
		q.data = q.data[:0]
		q.head = 0
	}

	return item, nil
}

// Peek returns the front item without removing it.
// Returns ErrEmptyContainer when the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}

	return q.data[q.head], nil
}

// Len returns the number of queued items. O(1).
func (q *Queue[T]) Len() int { return len(q.data) - q.head }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
