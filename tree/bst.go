package tree

import (
	"cmp"
	"errors"
)

// ErrEmptyTree is returned by Min and Max on an empty tree.
var ErrEmptyTree = errors.New("tree: empty tree")

type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
}

// BST is a binary search tree. The zero value is an empty tree ready for
// use. Not self-balancing: worst-case operations are O(n) on adversarial
// insertion orders, O(log n) expected on random ones.
type BST[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// Insert adds value to the tree; duplicates are ignored.
// Reports whether the value was actually inserted.
func (t *BST[T]) Insert(value T) bool {
	cur := &t.root
	for *cur != nil {
		switch {
		case value < (*cur).value:
			cur = &(*cur).left
		case value > (*cur).value:
			cur = &(*cur).right
		default:
			return false // duplicate
		}
	}
	*cur = &node[T]{value: value}
	t.size++

	return true
}

// Contains reports whether value occurs in the tree.
func (t *BST[T]) Contains(value T) bool {
	for cur := t.root; cur != nil; {
		switch {
		case value < cur.value:
			cur = cur.left
		case value > cur.value:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Remove deletes value from the tree; reports whether it was present.
// Two-child nodes are replaced by their in-order successor.
func (t *BST[T]) Remove(value T) bool {
	cur := &t.root
	for *cur != nil {
		switch {
		case value < (*cur).value:
			cur = &(*cur).left
		case value > (*cur).value:
			cur = &(*cur).right
		default:
			t.removeNode(cur)
			t.size--

			return true
		}
	}

	return false
}

func (t *BST[T]) removeNode(cur **node[T]) {
	n := *cur
	switch {
	case n.left == nil:
		*cur = n.right
	case n.right == nil:
		*cur = n.left
	default:
		// splice the in-order successor into n's place
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.value = (*succ).value
		*succ = (*succ).right
	}
}

// Min returns the smallest value. Returns ErrEmptyTree on an empty tree.
func (t *BST[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.value, nil
}

// Max returns the largest value. Returns ErrEmptyTree on an empty tree.
func (t *BST[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.value, nil
}

// Height returns the edge height of the tree: -1 when empty.
func (t *BST[T]) Height() int {
	return height(t.root)
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return 1 + l
	}

	return 1 + r
}

// Size returns the number of values stored. O(1).
func (t *BST[T]) Size() int { return t.size }

// Empty reports whether the tree has no values.
func (t *BST[T]) Empty() bool { return t.root == nil }

// Clear removes all values.
func (t *BST[T]) Clear() {
	t.root = nil
	t.size = 0
}

// InOrder returns all values left→node→right: ascending order.
func (t *BST[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PreOrder returns all values node→left→right.
func (t *BST[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PostOrder returns all values left→right→node.
func (t *BST[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.value)
	}
	walk(t.root)

	return out
}

// LevelOrder returns all values in breadth-first order from the root.
func (t *BST[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}
