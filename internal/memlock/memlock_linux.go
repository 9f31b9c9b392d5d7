//go:build linux

package memlock

import "golang.org/x/sys/unix"

// Lock best-effort pins b in physical memory so it is never swapped to
// disk while a generation attempt is in flight. Failure is not fatal:
// the caller proceeds without the protection (most commonly because the
// process lacks CAP_IPC_LOCK or exceeds RLIMIT_MEMLOCK).
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

// Unlock releases a region previously passed to Lock.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
