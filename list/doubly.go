package list

type dnode[T any] struct {
	value      T
	prev, next *dnode[T]
}

// Doubly is a doubly linked list with O(1) operations at both ends. The
// zero value is an empty list ready for use.
type Doubly[T comparable] struct {
	head, tail *dnode[T]
	size       int
}

// PushFront inserts value before the head. O(1).
func (l *Doubly[T]) PushFront(value T) {
	n := &dnode[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends value after the tail. O(1).
func (l *Doubly[T]) PushBack(value T) {
	n := &dnode[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head value.
// Returns ErrEmptyList when the list is empty.
func (l *Doubly[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}

	value := l.head.value
	l.head = l.head.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--

	return value, nil
}

// PopBack removes and returns the tail value.
// Returns ErrEmptyList when the list is empty.
func (l *Doubly[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyList
	}

	value := l.tail.value
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--

	return value, nil
}

// Front returns the head value without removing it.
func (l *Doubly[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the tail value without removing it.
func (l *Doubly[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// Remove unlinks the first node holding value; reports whether one existed.
// Both neighbour links are rewired, so no detached node keeps a back
// reference into the list. O(n).
func (l *Doubly[T]) Remove(value T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value != value {
			continue
		}
		if cur.prev != nil {
			cur.prev.next = cur.next
		} else {
			l.head = cur.next
		}
		if cur.next != nil {
			cur.next.prev = cur.prev
		} else {
			l.tail = cur.prev
		}
		cur.prev, cur.next = nil, nil
		l.size--

		return true
	}

	return false
}

// Contains reports whether value occurs in the list. O(n).
func (l *Doubly[T]) Contains(value T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == value {
			return true
		}
	}

	return false
}

// Values returns the list contents head→tail. O(n).
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Reversed returns the list contents tail→head. O(n).
func (l *Doubly[T]) Reversed() []T {
	out := make([]T, 0, l.size)
	for cur := l.tail; cur != nil; cur = cur.prev {
		out = append(out, cur.value)
	}

	return out
}

// Len returns the number of elements. O(1).
func (l *Doubly[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *Doubly[T]) Empty() bool { return l.size == 0 }
