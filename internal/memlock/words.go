package memlock

import "unsafe"

// LockWords is Lock for a []uint64-backed scratch buffer, such as the v1
// proof-of-work's working set.
func LockWords(b []uint64) {
	if len(b) == 0 {
		return
	}
	Lock(unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b)*8))
}

// UnlockWords is Unlock for a []uint64-backed scratch buffer.
func UnlockWords(b []uint64) {
	if len(b) == 0 {
		return
	}
	Unlock(unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b)*8))
}
