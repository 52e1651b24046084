package container

import "errors"

// ErrEmptyContainer is returned by Pop, Dequeue, Peek, and their variants
// when the container holds no items.
var ErrEmptyContainer = errors.New("container: empty container")
