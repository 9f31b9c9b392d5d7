package pow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrankenHashIdempotent(t *testing.T) {
	pub := make([]byte, 64)
	for i := range pub {
		pub[i] = byte(i * 7)
	}

	scratch1 := make([]byte, MemorySizeV0)
	scratch2 := make([]byte, MemorySizeV0)

	d1 := FrankenHash(pub, scratch1)
	d2 := FrankenHash(pub, scratch2)

	assert.Equal(t, d1, d2, "frankenhash must be deterministic for identical input")
	assert.Equal(t, AcceptV0(d1), AcceptV0(d2))
}

func TestFrankenHashChangesWithInput(t *testing.T) {
	pubA := make([]byte, 64)
	pubB := make([]byte, 64)
	pubB[0] = 1

	scratch := make([]byte, MemorySizeV0)
	dA := FrankenHash(pubA, scratch)
	dB := FrankenHash(pubB, scratch)

	assert.NotEqual(t, dA, dB, "distinct inputs should produce distinct digests")
}

func TestHashV1Idempotent(t *testing.T) {
	p := []byte("some candidate public key material")

	s1 := make([]uint64, MemoryWordsV1)
	s2 := make([]uint64, MemoryWordsV1)

	r1 := HashV1(p, s1)
	r2 := HashV1(p, s2)

	assert.Equal(t, r1, r2, "HashV1 must be deterministic for identical input")
}

func TestHashV1VariesOverInputs(t *testing.T) {
	scratch := make([]uint64, MemoryWordsV1)

	accepted := false
	rejected := false
	for i := 0; i < 4000 && !(accepted && rejected); i++ {
		p := []byte{byte(i), byte(i >> 8)}
		if HashV1(p, scratch) {
			accepted = true
		} else {
			rejected = true
		}
	}

	assert.True(t, accepted, "expected at least one accepting input in sample")
	assert.True(t, rejected, "expected at least one rejecting input in sample")
}
