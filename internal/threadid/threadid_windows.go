//go:build windows
// +build windows

// File: internal/threadid/threadid_windows.go
//
// Windows-specific thread id resolution.

package threadid

import "golang.org/x/sys/windows"

func currentPlatform() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
