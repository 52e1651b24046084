package list

import "errors"

// ErrEmptyList is returned when removing or inspecting an element of an
// empty list.
var ErrEmptyList = errors.New("list: empty list")

type snode[T any] struct {
	value T
	next  *snode[T]
}

// Singly is a singly linked list traversed head→tail. The zero value is an
// empty list ready for use.
type Singly[T comparable] struct {
	head, tail *snode[T]
	size       int
}

// PushFront inserts value before the head. O(1).
func (l *Singly[T]) PushFront(value T) {
	n := &snode[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends value after the tail. O(1).
func (l *Singly[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head value.
// Returns ErrEmptyList when the list is empty.
func (l *Singly[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}

	value := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return value, nil
}

// Front returns the head value without removing it.
func (l *Singly[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Remove unlinks the first node holding value; reports whether one existed.
// O(n).
func (l *Singly[T]) Remove(value T) bool {
	var prev *snode[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.value != value {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Contains reports whether value occurs in the list. O(n).
func (l *Singly[T]) Contains(value T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == value {
			return true
		}
	}

	return false
}

// Values returns the list contents head→tail. O(n).
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Len returns the number of elements. O(1).
func (l *Singly[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *Singly[T]) Empty() bool { return l.size == 0 }
