package container

// Deque is a double-ended queue. The zero value is empty and ready for use.
//
// Implemented as a growable ring buffer; all four end operations are O(1)
// amortized.
type Deque[T any] struct {
	data  []T
	front int
	size  int
}

// PushFront inserts item at the front.
func (d *Deque[T]) PushFront(item T) {
	d.grow()
	d.front = (d.front - 1 + len(d.data)) % len(d.data)
	d.data[d.front] = item
	d.size++
}

// PushBack inserts item at the back.
func (d *Deque[T]) PushBack(item T) {
	d.grow()
	d.data[(d.front+d.size)%len(d.data)] = item
	d.size++
}

// PopFront removes and returns the front item.
// Returns ErrEmptyContainer when the deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyContainer
	}

	item := d.data[d.front]
	d.data[d.front] = zero
	d.front = (d.front + 1) % len(d.data)
	d.size--

	return item, nil
}

// PopBack removes and returns the back item.
// Returns ErrEmptyContainer when the deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyContainer
	}

	i := (d.front + d.size - 1) % len(d.data)
	item := d.data[i]
	d.data[i] = zero
	d.size--

	return item, nil
}

// Front returns the front item without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return d.data[d.front], nil
}

// Back returns the back item without removing it.
func (d *Deque[T]) Back() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return d.data[(d.front+d.size-1)%len(d.data)], nil
}

// Len returns the number of items held. O(1).
func (d *Deque[T]) Len() int { return d.size }

// Empty reports whether the deque holds no items.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// grow doubles the ring when full, unwrapping it into a fresh slice.
func (d *Deque[T]) grow() {
	if d.size < len(d.data) {
		return
	}
	capacity := len(d.data) * 2
	if capacity == 0 {
		capacity = 8
	}
	fresh := make([]T, capacity)
	for i := 0; i < d.size; i++ {
		fresh[i] = d.data[(d.front+i)%len(d.data)]
	}
	d.data = fresh
	d.front = 0
}
