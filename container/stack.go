package container

// Stack is a last-in, first-out container. The zero value is an empty stack
// ready for use.
type Stack[T any] struct {
	data []T
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.data = append(s.data, item)
}

// Pop removes and returns the top item.
// Returns ErrEmptyContainer when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyContainer
	}

	n := len(s.data) - 1
	item := s.data[n]
	s.data[n] = zero // release the reference
	s.data = s.data[:n]

	return item, nil
}

// Peek returns the top item without removing it.
// Returns ErrEmptyContainer when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return s.data[len(s.data)-1], nil
}

// Len returns the number of stacked items. O(1).
func (s *Stack[T]) Len() int { return len(s.data) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.data) == 0 }
