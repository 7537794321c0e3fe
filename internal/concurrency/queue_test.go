// File: internal/concurrency/queue_test.go
// License: Apache-2.0

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueueBasicOperations(t *testing.T) {
	q := NewQueue[int](8)

	if _, ok := q.Dequeue(); ok {
		t.Error("empty queue returned an item")
	}
	if !q.Enqueue(42) {
		t.Error("enqueue failed on empty queue")
	}
	if val, ok := q.Dequeue(); !ok || val != 42 {
		t.Errorf("dequeue returned (%d, %v), want (42, true)", val, ok)
	}

	for i := 0; i < q.Cap(); i++ {
		if !q.Enqueue(i) {
			t.Fatalf("enqueue %d failed below capacity", i)
		}
	}
	if q.Enqueue(99) {
		t.Error("enqueue succeeded on full queue")
	}
	if q.Len() != q.Cap() {
		t.Errorf("Len = %d, want %d", q.Len(), q.Cap())
	}
}

func TestQueueCapacityRounding(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 2}, {1, 2}, {2, 2}, {3, 4}, {7, 8}, {8, 8}, {9, 16}, {1000, 1024},
	} {
		if got := NewQueue[int](tc.in).Cap(); got != tc.want {
			t.Errorf("NewQueue(%d).Cap() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestQueueDequeueReleasesReference(t *testing.T) {
	q := NewQueue[[]byte](2)
	q.Enqueue(make([]byte, 8))
	buf, ok := q.Dequeue()
	if !ok || buf == nil {
		t.Fatal("dequeue failed")
	}
	// The vacated cell must no longer hold the slice.
	if q.cells[0].data != nil {
		t.Error("dequeued cell still references the slice")
	}
}

func TestQueueMPMC(t *testing.T) {
	q := NewQueue[int](1024)
	producers := 8
	consumers := 8
	itemsPerProducer := 10000
	totalItems := int64(producers * itemsPerProducer)

	var wg sync.WaitGroup
	var sentSum, receivedSum, receivedCount int64

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !q.Enqueue(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	var consumerWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				if val, ok := q.Dequeue(); ok {
					atomic.AddInt64(&receivedSum, int64(val))
					atomic.AddInt64(&receivedCount, 1)
				} else if atomic.LoadInt64(&receivedCount) >= totalItems {
					return
				} else {
					runtime.Gosched()
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()
	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(10 * time.Second):
		t.Errorf("timeout: received %d/%d items", atomic.LoadInt64(&receivedCount), totalItems)
	}
}
