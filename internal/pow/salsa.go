package pow

import "golang.org/x/crypto/salsa20/salsa"

// salsaStream is a Salsa20 keystream generator with an explicit, externally
// observable block counter, used in CBC-like configuration rather than as
// an ordinary randomly-seekable stream cipher: the frankenhash construction
// needs the keystream position to track exactly which 64-byte memory block
// it is currently mixing.
type salsaStream struct {
	key     [32]byte
	nonce   [8]byte
	counter uint64
}

func newSalsaStream(key *[32]byte, nonce *[8]byte) *salsaStream {
	s := &salsaStream{key: *key, nonce: *nonce}
	return s
}

// crypt XORs one 64-byte block of src into dst using the current counter
// position, then advances the counter by one block.
func (s *salsaStream) crypt(dst, src []byte) {
	var in [16]byte
	copy(in[:8], s.nonce[:])
	putUint64LE(in[8:], s.counter)

	salsa.XORKeyStream(dst[:64], src[:64], &in, &s.key)

	s.counter++
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
