// File: cache.go
// License: Apache-2.0
//
// Per-thread single-slot cache tier. Traffic fans out over a fixed stripe
// table keyed by the hashed OS thread id, so in steady state every thread
// works on its own cache line with no contention. Each slot is guarded by a
// tiny state word because a goroutine can migrate to another OS thread in
// the middle of an operation; the CAS is uncontended unless that happens.

package arraypool

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/Sterbehilfe/arraypool/internal/threadid"
)

const (
	slotEmpty uint32 = iota
	slotBusy
	slotFull
)

// cacheStripes must be a power of two.
const cacheStripes = 128

type localSlot[T any] struct {
	state atomic.Uint32
	buf   []T
}

// localCache holds at most one array per size class, indexed by bucket
// index. An array parked in a slot is never simultaneously in a bucket.
type localCache[T any] struct {
	slots []localSlot[T]
	_     [64]byte // keep neighbouring stripes off one cache line
}

// tryTake removes and returns the cached array for class. A slot that was
// never populated reads as empty, so the first rent of a class on a thread
// always misses to the shared tier.
func (c *localCache[T]) tryTake(class int) ([]T, bool) {
	s := &c.slots[class]
	if !s.state.CompareAndSwap(slotFull, slotBusy) {
		return nil, false
	}
	buf := s.buf
	s.buf = nil
	s.state.Store(slotEmpty)
	return buf, true
}

// tryPut parks buf in the class slot. Refuses when the slot already holds
// an array so the value falls through to the shared bucket.
func (c *localCache[T]) tryPut(class int, buf []T) bool {
	s := &c.slots[class]
	if !s.state.CompareAndSwap(slotEmpty, slotBusy) {
		return false
	}
	s.buf = buf
	s.state.Store(slotFull)
	return true
}

// cacheTable is the fixed fan-out of localCaches. Collisions are benign:
// two threads hashing to one stripe share it safely through the slot CAS.
// Because the table never grows, no thread-exit teardown is required.
type cacheTable[T any] struct {
	stripes []localCache[T]
}

func newCacheTable[T any](classes int) *cacheTable[T] {
	t := &cacheTable[T]{stripes: make([]localCache[T], cacheStripes)}
	for i := range t.stripes {
		t.stripes[i].slots = make([]localSlot[T], classes)
	}
	return t
}

// current returns the stripe for the calling OS thread. The id is mixed
// through xxhash so sequentially assigned thread ids do not cluster on
// neighbouring stripes.
func (t *cacheTable[T]) current() *localCache[T] {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], threadid.Current())
	return &t.stripes[xxhash.Sum64(key[:])&uint64(len(t.stripes)-1)]
}
