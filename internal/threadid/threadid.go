// File: internal/threadid/threadid.go
//
// Package threadid resolves the identifier of the calling OS thread.
// Platform-specific implementations live in threadid_linux.go and
// threadid_windows.go, guarded by build tags; other platforms fall back to
// threadid_stub.go.

package threadid

// Current returns the id of the OS thread the calling goroutine runs on.
// Goroutines migrate between threads, so the value is a locality hint,
// never a stable identity.
func Current() uint64 {
	return currentPlatform()
}
