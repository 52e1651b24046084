// Package container provides the generic linear containers the rest of the
// module builds on: a FIFO Queue, a LIFO Stack, a double-ended Deque, and a
// min-PriorityQueue backed by container/heap.
//
// All four types are usable as zero values and grow on demand. Removal or
// inspection of an empty container fails with ErrEmptyContainer; callers
// decide whether that is exceptional; the containers never swallow it.
//
// The PriorityQueue is deliberately duplicate-tolerant: pushing the same
// item again with a better priority is the supported way to "decrease key",
// and consumers discard the stale entry when it eventually pops.
package container
