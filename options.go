// File: options.go
// License: Apache-2.0
//
// Functional options for pool construction.

package arraypool

// Default size-class ladder: 16 .. 1<<20 elements, 17 buckets.
const (
	DefaultMinLength = 16
	DefaultMaxLength = 1 << 20
)

// DefaultProbeLimit is how many larger buckets Rent consults after missing
// its own class before falling back to allocation.
const DefaultProbeLimit = 3

// Option customizes pool construction.
type Option func(*config)

type config struct {
	minLength      int
	maxLength      int
	probeLimit     int
	bucketCapacity func(index, classLength int) int
}

func defaultConfig() config {
	return config{
		minLength:      DefaultMinLength,
		maxLength:      DefaultMaxLength,
		probeLimit:     DefaultProbeLimit,
		bucketCapacity: defaultBucketCapacity,
	}
}

// defaultBucketCapacity gives smaller, more frequently reused classes the
// deeper buckets: 512 arrays for the smallest class, halving per class down
// to a floor of 8.
func defaultBucketCapacity(index, _ int) int {
	if c := 512 >> index; c > 8 {
		return c
	}
	return 8
}

// WithLengthRange bounds the size-class ladder. Both bounds must be powers
// of two with minLength <= maxLength; New panics otherwise.
func WithLengthRange(minLength, maxLength int) Option {
	return func(c *config) {
		c.minLength = minLength
		c.maxLength = maxLength
	}
}

// WithProbeLimit sets how many larger buckets Rent consults after a miss on
// the exact class. Zero disables probing.
func WithProbeLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.probeLimit = n
		}
	}
}

// WithBucketCapacity overrides the per-class bucket capacity. fn receives
// the bucket index and its class length; capacities are rounded up to the
// next power of two.
func WithBucketCapacity(fn func(index, classLength int) int) Option {
	return func(c *config) {
		if fn != nil {
			c.bucketCapacity = fn
		}
	}
}
