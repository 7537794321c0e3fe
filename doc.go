// Package arraypool
// License: Apache-2.0
//
// Generic two-tier array pooling for allocation-heavy hot paths.
// A per-thread single-slot cache sits in front of one lock-free bucket per
// power-of-two size class, so the common rent-use-return cycle completes
// without locks and usually without touching shared state.
// See pool.go, bucket.go and cache.go for implementation details.
package arraypool
