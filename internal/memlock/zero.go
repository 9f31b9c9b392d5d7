package memlock

// Zero overwrites b with zero bytes. Used to scrub PoW scratch buffers and
// private key material before they are released back to the allocator.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroUint64 overwrites a []uint64 scratch buffer with zero words.
func ZeroUint64(b []uint64) {
	for i := range b {
		b[i] = 0
	}
}
