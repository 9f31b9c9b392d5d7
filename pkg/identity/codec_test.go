package identity

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshveil/identity/pkg/address"
)

func fakeC25519Identity(t *testing.T) *Identity {
	t.Helper()
	id := &Identity{variant: C25519, addr: 0x0102030405, hasPrivate: true}
	for i := range id.c25519Pub {
		id.c25519Pub[i] = byte(i)
	}
	for i := range id.c25519Priv {
		id.c25519Priv[i] = byte(i + 1)
	}
	return id
}

func fakeP384Identity(t *testing.T) *Identity {
	t.Helper()
	id := &Identity{variant: P384, addr: 0x0a0b0c0d0e, hasPrivate: true}
	for i := range id.p384Pub {
		id.p384Pub[i] = byte(i)
	}
	for i := range id.p384Priv {
		id.p384Priv[i] = byte(i + 1)
	}
	return id
}

func TestTextRoundTripC25519WithPrivate(t *testing.T) {
	id := fakeC25519Identity(t)
	s := id.String()
	assert.Len(t, s, 10+3+128+1+128)

	out, err := FromString(s)
	require.NoError(t, err)
	assert.Equal(t, id.c25519Pub, out.c25519Pub)
	assert.Equal(t, id.c25519Priv, out.c25519Priv)
	assert.True(t, out.hasPrivate)
	assert.Equal(t, id.addr, out.addr)
}

func TestTextPublicOnlyOmitsPrivate(t *testing.T) {
	id := fakeC25519Identity(t)
	s := id.PublicString()

	out, err := FromString(s)
	require.NoError(t, err)
	assert.False(t, out.hasPrivate)
}

func TestTextRejectsMalformedFieldCount(t *testing.T) {
	_, err := FromString("0102030405:0")
	assert.Error(t, err)
}

func TestTextRejectsReservedAddress(t *testing.T) {
	id := fakeC25519Identity(t)
	id.addr = 0
	s := id.PublicString()
	_, err := FromString(s)
	assert.Error(t, err)
}

func TestTextRejectsWrongVariantPayloadLength(t *testing.T) {
	_, err := FromString("0102030405:0:abcd")
	assert.Error(t, err)
}

func TestBinaryRoundTripC25519WithPrivate(t *testing.T) {
	id := fakeC25519Identity(t)
	data := id.Marshal(true)

	out, n, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, id.c25519Pub, out.c25519Pub)
	assert.Equal(t, id.c25519Priv, out.c25519Priv)
	assert.True(t, out.hasPrivate)
}

func TestBinaryRoundTripP384PublicOnly(t *testing.T) {
	id := fakeP384Identity(t)
	// Binding check requires the address to match SHA-384(pub); recompute it.
	hash := sha512.Sum384(id.p384Pub[:])
	id.addr = address.FromBytes(hash[:5])
	id.fingerprint = address.Fingerprint{Address: id.addr, Hash: hash}

	data := id.Marshal(false)
	out, n, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.False(t, out.hasPrivate)
	assert.Equal(t, id.p384Pub, out.p384Pub)
}

func TestBinaryRejectsTruncatedBuffer(t *testing.T) {
	id := fakeC25519Identity(t)
	data := id.Marshal(true)
	_, _, err := Unmarshal(data[:len(data)-1])
	assert.Error(t, err)
}

func TestBinaryRejectsUnsupportedVariant(t *testing.T) {
	id := fakeC25519Identity(t)
	data := id.Marshal(false)
	data[5] = 0x7f
	_, _, err := Unmarshal(data)
	assert.Error(t, err)
}
