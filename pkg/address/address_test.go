package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshveil/identity/pkg/address"
)

func TestStringRoundTrip(t *testing.T) {
	testcases := []struct {
		name string
		addr address.Address
	}{
		{"small", address.Address(0x01)},
		{"typical", address.Address(0x1234567890)},
		{"max40bit", address.Address(0xfffffffffe)},
	}

	for _, tc := range testcases {
		s := tc.addr.String()
		assert.Len(t, s, 10, tc.name+": wrong string length")

		parsed, err := address.ParseString(s)
		assert.NoError(t, err, tc.name+": parse error")
		assert.Equal(t, tc.addr, parsed, tc.name+": round-trip mismatch")
	}
}

func TestParseStringRejectsWrongLength(t *testing.T) {
	_, err := address.ParseString("abc")
	assert.Error(t, err)
}

func TestIsReserved(t *testing.T) {
	testcases := []struct {
		name     string
		addr     address.Address
		reserved bool
	}{
		{"zero", address.Address(0), true},
		{"top-byte-ff", address.Address(0xff00000001), true},
		{"ordinary", address.Address(0x1234567890), false},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.reserved, tc.addr.IsReserved(), tc.name)
	}
}

func TestFingerprintEqual(t *testing.T) {
	a := address.Fingerprint{Address: 1, Hash: [48]byte{1, 2, 3}}
	b := address.Fingerprint{Address: 1, Hash: [48]byte{1, 2, 3}}
	c := address.Fingerprint{Address: 2, Hash: [48]byte{1, 2, 3}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
