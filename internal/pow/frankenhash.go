// Package pow implements the two memory-hard proof-of-work functions used
// to gate identity minting: the legacy v0 "frankenhash" and the v1
// Speck-based hash. Both are deliberately expensive to evaluate on
// GPU/ASIC hardware by forcing a large, sequentially-dependent working set.
package pow

import (
	"crypto/sha512"
	"encoding/binary"
)

// MemorySizeV0 is the size in bytes of the v0 frankenhash scratch buffer.
const MemorySizeV0 = 2097152

// AcceptThresholdV0 is the v0 proof-of-work acceptance bound: the first
// byte of the digest must be strictly less than this value.
const AcceptThresholdV0 = 17

// FrankenHash computes the v0 memory-hard digest of pub using scratch as
// working memory. scratch must be exactly MemorySizeV0 bytes; it is
// overwritten in full. The caller decides acceptance via AcceptV0.
func FrankenHash(pub []byte, scratch []byte) [64]byte {
	if len(scratch) != MemorySizeV0 {
		panic("pow: frankenhash scratch must be MemorySizeV0 bytes")
	}

	digest := sha512.Sum512(pub)

	for i := range scratch {
		scratch[i] = 0
	}

	var key [32]byte
	copy(key[:], digest[0:32])
	var nonce [8]byte
	copy(nonce[:], digest[32:40])
	stream := newSalsaStream(&key, &nonce)

	stream.crypt(scratch[0:64], scratch[0:64])
	for i := 64; i < MemorySizeV0; i += 64 {
		copy(scratch[i:i+64], scratch[i-64:i])
		stream.crypt(scratch[i:i+64], scratch[i:i+64])
	}

	words := MemorySizeV0 / 8
	for i := 0; i < words; i += 2 {
		idx1 := int(binary.BigEndian.Uint64(scratch[i*8:i*8+8]) % 8)
		idx2 := int(binary.BigEndian.Uint64(scratch[(i+1)*8:(i+1)*8+8]) % uint64(words))

		dWord := digest[idx1*8 : idx1*8+8]
		mWord := scratch[idx2*8 : idx2*8+8]
		var tmp [8]byte
		copy(tmp[:], mWord)
		copy(mWord, dWord)
		copy(dWord, tmp[:])

		stream.crypt(digest[:], digest[:])
	}

	return digest
}

// AcceptV0 is the v0 proof-of-work acceptance predicate.
func AcceptV0(digest [64]byte) bool {
	return digest[0] < AcceptThresholdV0
}
