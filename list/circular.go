package list

// Circular is a singly linked circular list: the tail's link points back at
// the head, so iteration wraps. The zero value is an empty list ready for
// use. Traversal helpers stop after one full cycle, never looping forever.
type Circular[T comparable] struct {
	head, tail *snode[T]
	size       int
}

// PushFront inserts value before the head; the tail keeps pointing at the new
// head. O(1).
func (l *Circular[T]) PushFront(value T) {
	n := &snode[T]{value: value}
	if l.head == nil {
		n.next = n
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.tail.next = n
		l.head = n
	}
	l.size++
}

// PushBack appends value after the tail; its link closes the circle back to
// the head. O(1).
func (l *Circular[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if l.head == nil {
		n.next = n
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the head value; the tail is relinked to the
// new head. Returns ErrEmptyList when the list is empty. O(1).
func (l *Circular[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}

	value := l.head.value
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		l.head = l.head.next
		l.tail.next = l.head
	}
	l.size--

	return value, nil
}

// PopBack removes and returns the tail value. Singly linked, so locating the
// new tail walks the circle. Returns ErrEmptyList when the list is empty.
// O(n).
func (l *Circular[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyList
	}

	value := l.tail.value
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		cur := l.head
		for cur.next != l.tail {
			cur = cur.next
		}
		cur.next = l.head
		l.tail = cur
	}
	l.size--

	return value, nil
}

// Front returns the head value without removing it.
func (l *Circular[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the tail value without removing it.
func (l *Circular[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// Contains reports whether value occurs in the list, scanning exactly one
// cycle. O(n).
func (l *Circular[T]) Contains(value T) bool {
	cur := l.head
	for i := 0; i < l.size; i++ {
		if cur.value == value {
			return true
		}
		cur = cur.next
	}

	return false
}

// Values returns the list contents head→tail, one full cycle. O(n).
func (l *Circular[T]) Values() []T {
	out := make([]T, 0, l.size)
	cur := l.head
	for i := 0; i < l.size; i++ {
		out = append(out, cur.value)
		cur = cur.next
	}

	return out
}

// Len returns the number of elements. O(1).
func (l *Circular[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *Circular[T]) Empty() bool { return l.size == 0 }
