// File: sizeclass.go
// License: Apache-2.0
//
// Static mapping between array lengths, power-of-two size classes and
// bucket indices. Pure arithmetic, fixed at pool construction.

package arraypool

import (
	"fmt"
	"math/bits"
)

// sizeClasses describes the ladder of power-of-two lengths served by the
// pool's buckets. The ladder is immutable after construction.
type sizeClasses struct {
	minLength int
	maxLength int
	minShift  int
	count     int
}

func newSizeClasses(minLength, maxLength int) sizeClasses {
	if minLength < 1 || minLength&(minLength-1) != 0 {
		panic(fmt.Sprintf("arraypool: minimum length %d is not a power of two", minLength))
	}
	if maxLength < minLength || maxLength&(maxLength-1) != 0 {
		panic(fmt.Sprintf("arraypool: maximum length %d is not a power of two >= %d", maxLength, minLength))
	}
	minShift := bits.TrailingZeros(uint(minLength))
	maxShift := bits.TrailingZeros(uint(maxLength))
	return sizeClasses{
		minLength: minLength,
		maxLength: maxLength,
		minShift:  minShift,
		count:     maxShift - minShift + 1,
	}
}

// roundUp returns the smallest size class length covering n.
// Callers guarantee 0 <= n <= maxLength.
func (s sizeClasses) roundUp(n int) int {
	if n <= s.minLength {
		return s.minLength
	}
	return 1 << bits.Len(uint(n-1))
}

// indexOf maps an exact in-range power-of-two length to its bucket index.
// Callers must round first; anything else is a programming error.
func (s sizeClasses) indexOf(length int) int {
	return bits.TrailingZeros(uint(length)) - s.minShift
}

// lengthOf is the inverse of indexOf.
func (s sizeClasses) lengthOf(index int) int {
	return s.minLength << index
}

// contains reports whether length is exactly one of the ladder's classes.
func (s sizeClasses) contains(length int) bool {
	return length >= s.minLength && length <= s.maxLength && length&(length-1) == 0
}
