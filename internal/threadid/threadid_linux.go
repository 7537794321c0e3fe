//go:build linux
// +build linux

// File: internal/threadid/threadid_linux.go
//
// Linux-specific thread id resolution via gettid(2).

package threadid

import "golang.org/x/sys/unix"

func currentPlatform() uint64 {
	return uint64(unix.Gettid())
}
