// File: pool.go
// License: Apache-2.0
//
// Pool orchestration: size-class rounding, the thread-local fast path, the
// shared bucket tier and the allocation fallback. Rent and Return never
// block and never fail; every full/occupied condition inside the tiers is
// plain control flow, not an error.

package arraypool

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/Sterbehilfe/arraypool/api"
)

// Pool is a two-tier array pool for elements of type T.
//
// The bucket fan-out is immutable after New, so lookups need no locking;
// the only shared mutable state lives inside the individual buckets and
// cache slots.
type Pool[T any] struct {
	classes    sizeClasses
	probeLimit int
	// clearOnReturn is set when T contains pointers: pooled memory must not
	// keep the previous renter's objects reachable.
	clearOnReturn bool

	cache   *cacheTable[T]
	buckets []*bucket[T]

	alloc      atomic.Int64
	free       atomic.Int64
	cacheHits  atomic.Int64
	bucketHits atomic.Int64
	drops      atomic.Int64
}

var _ api.Pool[byte] = (*Pool[byte])(nil)

// New constructs a pool. The zero set of options gives 17 size classes
// from 16 to 1<<20 elements.
func New[T any](opts ...Option) *Pool[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := newSizeClasses(cfg.minLength, cfg.maxLength)
	p := &Pool[T]{
		classes:       classes,
		probeLimit:    cfg.probeLimit,
		clearOnReturn: typeHasPointers[T](),
		cache:         newCacheTable[T](classes.count),
		buckets:       make([]*bucket[T], classes.count),
	}
	for i := range p.buckets {
		length := classes.lengthOf(i)
		p.buckets[i] = newBucket[T](length, cfg.bucketCapacity(i, length))
	}
	return p
}

// Rent returns a slice with len equal to the smallest size class covering
// minimumLength. Lengths beyond the ladder are served by a direct, unpooled
// allocation of the exact size. Contents are unspecified on every pooled
// path. Panics if minimumLength is negative.
func (p *Pool[T]) Rent(minimumLength int) []T {
	if minimumLength < 0 {
		panic(fmt.Sprintf("arraypool: negative length %d", minimumLength))
	}
	if minimumLength > p.classes.maxLength {
		return make([]T, minimumLength) // unpooled path
	}

	length := p.classes.roundUp(minimumLength)
	class := p.classes.indexOf(length)

	if buf, ok := p.cache.current().tryTake(class); ok {
		p.cacheHits.Add(1)
		return buf[:length]
	}

	// Miss on the fast path: consult the class's own bucket, then a few
	// larger ones. Buckets store full-capacity slices, so an array taken
	// from a larger class is sliced down here and finds its way back to its
	// true bucket on return via cap.
	limit := class + p.probeLimit
	if limit >= len(p.buckets) {
		limit = len(p.buckets) - 1
	}
	for i := class; i <= limit; i++ {
		if buf, ok := p.buckets[i].tryRent(); ok {
			p.bucketHits.Add(1)
			return buf[:length]
		}
	}

	buf, pooled := p.buckets[class].rentOrAllocate()
	if pooled {
		p.bucketHits.Add(1)
	} else {
		p.alloc.Add(1)
	}
	return buf[:length]
}

// RentExact returns a slice with len == length exactly. Lengths below the
// minimum class or above the maximum are allocated directly and never
// pooled; everything in between is a pooled rent sliced down to size.
func (p *Pool[T]) RentExact(length int) []T {
	if length < 0 {
		panic(fmt.Sprintf("arraypool: negative length %d", length))
	}
	if length < p.classes.minLength || length > p.classes.maxLength {
		return make([]T, length)
	}
	return p.Rent(length)[:length]
}

// Return hands buf back for reuse. Eligibility is keyed off cap: slices
// whose capacity is not an exact in-range power of two (foreign, oversized
// or zero-length arrays) are silently dropped. The slice is re-extended to
// full capacity before pooling, and zeroed when the caller asks or when T
// contains pointers.
func (p *Pool[T]) Return(buf []T, clearBuf bool) {
	capacity := cap(buf)
	if !p.classes.contains(capacity) {
		return
	}
	buf = buf[:capacity]
	if clearBuf || p.clearOnReturn {
		clear(buf)
	}

	class := p.classes.indexOf(capacity)
	if p.cache.current().tryPut(class, buf) {
		p.free.Add(1)
		return
	}
	if p.buckets[class].tryReturn(buf) {
		p.free.Add(1)
		return
	}
	p.drops.Add(1)
}

// RentScoped rents like Rent and wraps the result so the borrow is released
// on every exit path via defer.
func (p *Pool[T]) RentScoped(minimumLength int) *Rented[T] {
	return &Rented[T]{buf: p.Rent(minimumLength), pool: p}
}

// Clear drains every bucket. Arrays parked in thread-local cache slots are
// not touched; they leave the pool only when their thread rents them again.
// Administrative operation, not meant for hot paths.
func (p *Pool[T]) Clear() {
	for _, b := range p.buckets {
		b.drain()
	}
}

// Stats returns a snapshot of the pool's counters. Counters cover pooled
// size classes only; out-of-range rents bypass the pool.
func (p *Pool[T]) Stats() api.PoolStats {
	alloc := p.alloc.Load()
	free := p.free.Load()
	cacheHits := p.cacheHits.Load()
	bucketHits := p.bucketHits.Load()
	drops := p.drops.Load()
	return api.PoolStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		CacheHits:  cacheHits,
		BucketHits: bucketHits,
		Drops:      drops,
		InUse:      alloc + cacheHits + bucketHits - free - drops,
	}
}

// typeHasPointers decides once, at construction, whether returned arrays
// must always be zeroed so stale elements cannot extend object lifetimes
// through the pool.
func typeHasPointers[T any]() bool {
	var zero T
	return kindHasPointers(reflect.TypeOf(&zero).Elem())
}

func kindHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return kindHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if kindHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
