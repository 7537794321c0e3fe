//go:build !linux && !windows
// +build !linux,!windows

// File: internal/threadid/threadid_stub.go
//
// Stub for platforms without a cheap thread id. All callers then share one
// cache stripe, which stays correct because stripe slots are CAS-guarded.

package threadid

func currentPlatform() uint64 {
	return 0
}
