// Package address implements the short 40-bit network address and the
// 48-byte fingerprint hash that identify a peer in the overlay.
package address

import (
	"encoding/hex"
	"fmt"
)

// Length is the number of significant bytes in an Address.
const Length = 5

// HashLength is the length of a Fingerprint's hash in bytes.
const HashLength = 48

// Address is a 40-bit short identifier derived from an identity's keys.
// Only the low 40 bits are significant; the upper 24 bits are always zero.
type Address uint64

// FromBytes builds an Address from the first Length bytes of b, big-endian.
func FromBytes(b []byte) Address {
	var a Address
	for i := 0; i < Length && i < len(b); i++ {
		a = a<<8 | Address(b[i])
	}
	return a
}

// Bytes renders the address as Length big-endian bytes.
func (a Address) Bytes() [Length]byte {
	var out [Length]byte
	v := uint64(a)
	for i := Length - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// String renders the address as exactly 10 lowercase hex digits.
func (a Address) String() string {
	b := a.Bytes()
	return hex.EncodeToString(b[:])
}

// ParseString parses exactly 10 lowercase hex digits into an Address.
func ParseString(s string) (Address, error) {
	if len(s) != Length*2 {
		return 0, fmt.Errorf("address: expected %d hex digits, got %d", Length*2, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("address: %w", err)
	}
	return FromBytes(raw), nil
}

// IsReserved reports whether the address falls in a range excluded by
// policy: the all-zero address, and any address whose top byte is 0xff.
func (a Address) IsReserved() bool {
	if a == 0 {
		return true
	}
	topByte := byte(a >> 32)
	return topByte == 0xff
}

// Fingerprint aggregates an address with the 48-byte SHA-384 hash of the
// public key material it was derived from; it is the canonical compact
// identifier for an identity.
type Fingerprint struct {
	Address Address
	Hash    [HashLength]byte
}

// String renders the fingerprint as address-hex ':' hash-hex.
func (f Fingerprint) String() string {
	return f.Address.String() + ":" + hex.EncodeToString(f.Hash[:])
}

// Equal reports whether two fingerprints name the same address and hash.
func (f Fingerprint) Equal(o Fingerprint) bool {
	return f.Address == o.Address && f.Hash == o.Hash
}
