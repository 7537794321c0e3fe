// File: bucket_test.go
// License: Apache-2.0

package arraypool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketRentReturn(t *testing.T) {
	b := newBucket[byte](64, 8)

	_, ok := b.tryRent()
	require.False(t, ok, "empty bucket served an array")

	require.True(t, b.tryReturn(make([]byte, 64)))
	buf, ok := b.tryRent()
	require.True(t, ok)
	require.Len(t, buf, 64)
}

func TestBucketCapacityLimit(t *testing.T) {
	b := newBucket[byte](64, 8)

	for i := 0; i < 8; i++ {
		require.True(t, b.tryReturn(make([]byte, 64)), "return %d below capacity", i)
	}
	require.False(t, b.tryReturn(make([]byte, 64)), "return succeeded on full bucket")
}

func TestBucketRentOrAllocate(t *testing.T) {
	b := newBucket[byte](64, 8)

	buf, pooled := b.rentOrAllocate()
	require.False(t, pooled)
	require.Len(t, buf, 64)

	require.True(t, b.tryReturn(buf))
	again, pooled := b.rentOrAllocate()
	require.True(t, pooled)
	require.Same(t, &buf[0], &again[0], "pooled array not reused")
}

func TestBucketDrain(t *testing.T) {
	b := newBucket[byte](64, 8)
	for i := 0; i < 4; i++ {
		require.True(t, b.tryReturn(make([]byte, 64)))
	}
	b.drain()
	_, ok := b.tryRent()
	require.False(t, ok, "drained bucket still held arrays")
}
