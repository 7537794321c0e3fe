// File: api/pool.go
// License: Apache-2.0
//
// Defines the abstract pooling surface: rent/return of reusable arrays plus
// accounting metrics for observability.

package api

// Pool is the generic borrow/return surface of an array pool.
//
// Rent and RentExact never fail and never block: they degrade to a direct
// allocation when every pooled tier misses. Return is best effort and
// side-effect free on failure; an array the pool cannot absorb is simply
// dropped and reclaimed normally.
type Pool[T any] interface {
	// Rent returns a slice with len >= minimumLength, rounded up to the
	// pool's size class. Contents are unspecified; callers must not assume
	// zeroing. Panics if minimumLength is negative.
	Rent(minimumLength int) []T

	// RentExact returns a slice with len == length exactly.
	RentExact(length int) []T

	// Return hands a slice back for reuse. Slices whose capacity matches no
	// size class are silently ignored. clearBuf forces zeroing; element
	// types containing pointers are always zeroed.
	Return(buf []T, clearBuf bool)

	// Clear drops every array held in the shared buckets.
	Clear()

	// Stats exposes allocation and reuse counters.
	Stats() PoolStats
}

// PoolStats aggregates allocation/reuse counters for the pooled size
// classes. Out-of-range rents bypass the pool entirely and are not counted.
type PoolStats struct {
	// TotalAlloc counts fresh arrays created on pooled rent paths.
	TotalAlloc int64
	// TotalFree counts returned arrays accepted back into a cache slot or
	// bucket.
	TotalFree int64
	// CacheHits and BucketHits split reused rents by the tier that served
	// them.
	CacheHits  int64
	BucketHits int64
	// Drops counts returns discarded because every tier was full.
	Drops int64
	// InUse is the number of pooled-class arrays currently checked out.
	InUse int64
}
