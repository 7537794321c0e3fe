// File: bytespool/bytespool.go
// License: Apache-2.0
//
// Process-wide []byte pool so components share one set of buckets instead
// of fragmenting allocations across private pools.

package bytespool

import (
	"sync"

	"github.com/Sterbehilfe/arraypool"
)

var (
	defaultOnce sync.Once
	defaultPool *arraypool.Pool[byte]
)

// Default returns the process-wide byte pool.
func Default() *arraypool.Pool[byte] {
	defaultOnce.Do(func() {
		defaultPool = arraypool.New[byte]()
	})
	return defaultPool
}

// Get rents at least n bytes from the default pool.
func Get(n int) []byte {
	return Default().Rent(n)
}

// GetExact rents exactly n bytes from the default pool.
func GetExact(n int) []byte {
	return Default().RentExact(n)
}

// Put returns a buffer to the default pool.
func Put(buf []byte) {
	Default().Return(buf, false)
}
