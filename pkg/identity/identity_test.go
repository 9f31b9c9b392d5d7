package identity

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func TestGenerateC25519ValidatesAndBindsAddress(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	assert.False(t, id.Address().IsReserved())
	assert.True(t, id.HasPrivate())
	assert.True(t, id.Validate())
}

func TestGenerateP384ValidatesAndBindsAddress(t *testing.T) {
	if testing.Short() {
		t.Skip("P384 generation is memory-hard and slow under -short")
	}

	id, err := Generate(P384)
	require.NoError(t, err)

	assert.False(t, id.Address().IsReserved())
	assert.True(t, id.HasPrivate())
	assert.True(t, id.Validate())
}

func TestSignVerifyLawC25519(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	data := []byte("an arbitrary message")
	sig := make([]byte, SignatureBufferSize)

	n := id.Sign(data, sig)
	require.Equal(t, c25519SigSize, n)
	assert.True(t, id.Verify(data, sig[:n]))

	tampered := append([]byte(nil), data...)
	tampered[0] ^= 1
	assert.False(t, id.Verify(tampered, sig[:n]))

	tamperedSig := append([]byte(nil), sig[:n]...)
	tamperedSig[0] ^= 1
	assert.False(t, id.Verify(data, tamperedSig))
}

func TestSignRejectsUndersizedBuffer(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	n := id.Sign([]byte("x"), make([]byte, c25519SigSize-1))
	assert.Equal(t, 0, n)
}

func TestAgreementSymmetryC25519(t *testing.T) {
	a, err := Generate(C25519)
	require.NoError(t, err)
	b, err := Generate(C25519)
	require.NoError(t, err)

	secretAB, err := a.Agree(b)
	require.NoError(t, err)
	secretBA, err := b.Agree(a)
	require.NoError(t, err)

	assert.Equal(t, secretAB, secretBA)
	assert.Len(t, secretAB, AgreementKeySize)
}

func TestAgreementMixedVariantFallsBackToX25519Only(t *testing.T) {
	if testing.Short() {
		t.Skip("P384 generation is memory-hard and slow under -short")
	}

	p384, err := Generate(P384)
	require.NoError(t, err)
	c25519, err := Generate(C25519)
	require.NoError(t, err)

	secretPC, err := p384.Agree(c25519)
	require.NoError(t, err)
	secretCP, err := c25519.Agree(p384)
	require.NoError(t, err)

	assert.Equal(t, secretPC, secretCP)
	assert.Len(t, secretPC, AgreementKeySize)

	raw, err := curve25519.X25519(c25519.c25519Priv[:32], p384.p384C25519Pub()[:32])
	require.NoError(t, err)
	h := sha512.Sum512(raw)
	assert.Equal(t, h[:AgreementKeySize], secretPC)
}

func TestValidationRejectsBitFlip(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	id.c25519Pub[0] ^= 1
	assert.False(t, id.Validate())
}

func TestPrivateAbsenceBehavior(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	id.Zeroize()
	assert.False(t, id.HasPrivate())

	sig := make([]byte, SignatureBufferSize)
	assert.Equal(t, 0, id.Sign([]byte("x"), sig))

	_, err = id.Agree(id)
	assert.ErrorIs(t, err, ErrMissingPrivate)

	withPriv := id.String()
	withoutPriv := id.PublicString()
	assert.Equal(t, withoutPriv, withPriv)
}

func TestGeneratedC25519TextAndBinaryRoundTrip(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	parsed, err := FromString(id.String())
	require.NoError(t, err)
	assert.Equal(t, id.c25519Pub, parsed.c25519Pub)
	assert.Equal(t, id.c25519Priv, parsed.c25519Priv)
	assert.Equal(t, id.addr, parsed.addr)

	data := id.Marshal(true)
	decoded, n, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, id.c25519Pub, decoded.c25519Pub)
	assert.Equal(t, id.c25519Priv, decoded.c25519Priv)
}

func TestZeroizeClearsPrivateBytes(t *testing.T) {
	id, err := Generate(C25519)
	require.NoError(t, err)

	id.Zeroize()

	for _, b := range id.c25519Priv {
		assert.Zero(t, b)
	}
}
