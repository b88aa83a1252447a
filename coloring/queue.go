// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coloring

import "go.uber.org/atomic"

// queue is a fixed-capacity, append-only buffer of vertex ids with an
// atomic tail counter. It backs both Q (the read queue, whose tail is
// fixed for the duration of a round) and Qtmp (the write queue, which
// workers append to concurrently via push during conflict detection).
//
// Capacity is always NVer: no round can enqueue more than every vertex.
type queue struct {
	items []int
	tail  atomic.Int64
}

// newQueue returns an empty queue with capacity cap.
func newQueue(cap int) *queue {
	return &queue{items: make([]int, cap)}
}

// identity fills the queue with [0, n) and sets its tail to n, the
// initial state of Q before the first round.
func identity(n int) *queue {
	q := newQueue(n)
	for i := 0; i < n; i++ {
		q.items[i] = i
	}
	q.tail.Store(int64(n))
	return q
}

// push appends v at an atomically reserved slot and returns its index.
// Safe for concurrent use by multiple workers.
func (q *queue) push(v int) int {
	idx := q.tail.Inc() - 1
	q.items[idx] = v
	return int(idx)
}

// len returns the current tail, i.e. the number of valid entries.
func (q *queue) len() int {
	return int(q.tail.Load())
}

// resetTail symbolically empties the queue without releasing its backing
// array, so it can be reused as next round's write queue.
func (q *queue) resetTail() {
	q.tail.Store(0)
}

// slice returns the valid prefix of the backing array. The result aliases
// the queue's storage and is only valid until the next push/resetTail.
func (q *queue) slice() []int {
	return q.items[:q.len()]
}
