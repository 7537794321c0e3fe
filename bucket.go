// File: bucket.go
// License: Apache-2.0
//
// A bucket is the shared pool of reusable arrays for one size class, backed
// by a bounded lock-free MPMC queue. Every array stored here has capacity
// equal to the bucket's class length; ordering of reuse is best effort.

package arraypool

import "github.com/Sterbehilfe/arraypool/internal/concurrency"

type bucket[T any] struct {
	length int
	queue  *concurrency.Queue[[]T]
}

func newBucket[T any](length, capacity int) *bucket[T] {
	return &bucket[T]{
		length: length,
		queue:  concurrency.NewQueue[[]T](capacity),
	}
}

// tryRent pops one pooled array; ok is false when the bucket is empty.
func (b *bucket[T]) tryRent() ([]T, bool) {
	return b.queue.Dequeue()
}

// rentOrAllocate never fails: when the bucket is empty it synthesizes a
// fresh array of the class length. pooled reports which path was taken.
func (b *bucket[T]) rentOrAllocate() (buf []T, pooled bool) {
	if buf, ok := b.queue.Dequeue(); ok {
		return buf, true
	}
	return make([]T, b.length), false
}

// tryReturn pushes buf back; returns false when the bucket is at capacity,
// in which case the caller drops the array.
func (b *bucket[T]) tryReturn(buf []T) bool {
	return b.queue.Enqueue(buf)
}

// drain discards every pooled array.
func (b *bucket[T]) drain() {
	for {
		if _, ok := b.queue.Dequeue(); !ok {
			return
		}
	}
}
