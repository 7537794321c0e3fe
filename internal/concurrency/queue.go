// File: internal/concurrency/queue.go
// Package concurrency provides the lock-free primitives behind the pool's
// shared buckets.
// License: Apache-2.0
//
// Bounded MPMC queue using per-cell sequence numbers, based on the pattern
// by Dmitry Vyukov. Operations never block: a full or empty queue reports
// failure and the caller falls through to its next tier.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// Queue is a fixed-capacity MPMC queue. Capacity is rounded up to a power
// of two at construction and never changes afterwards.
type Queue[T any] struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []cell[T]
}

// NewQueue creates a queue holding at least capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}

	q := &Queue[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// Enqueue adds val; returns false if the queue is full.
func (q *Queue[T]) Enqueue(val T) bool {
	for {
		tail := q.tail.Load()
		c := &q.cells[tail&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if q.tail.CompareAndSwap(tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns an item; ok is false if the queue is empty.
// The vacated cell is zeroed so the queue never pins dequeued values.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	for {
		head := q.head.Load()
		c := &q.cells[head&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if q.head.CompareAndSwap(head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + q.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			return item, false // empty
		}
		// head moved, retry
	}
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the fixed queue capacity.
func (q *Queue[T]) Cap() int {
	return len(q.cells)
}
