package identity

import (
	"crypto/sha512"
	"encoding/base32"
	"encoding/hex"
	"strings"

	"github.com/meshveil/identity/pkg/address"
)

// textBase32 is the RFC-4648-style base-32 alphabet used for the P384
// variant's text fields: lowercase, unpadded.
var textBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// String renders the identity's text form, including private key material
// when present.
func (id *Identity) String() string {
	return id.stringWith(true)
}

// PublicString renders the identity's text form without private key
// material, regardless of whether it is present.
func (id *Identity) PublicString() string {
	return id.stringWith(false)
}

func (id *Identity) stringWith(includePrivate bool) string {
	var b strings.Builder
	b.WriteString(id.addr.String())
	b.WriteByte(':')
	b.WriteString(id.variant.String())
	b.WriteByte(':')

	switch id.variant {
	case C25519:
		b.WriteString(hex.EncodeToString(id.c25519Pub[:]))
		if includePrivate && id.hasPrivate {
			b.WriteByte(':')
			b.WriteString(hex.EncodeToString(id.c25519Priv[:]))
		}
	case P384:
		b.WriteString(textBase32.EncodeToString(id.p384Pub[:]))
		if includePrivate && id.hasPrivate {
			b.WriteByte(':')
			b.WriteString(textBase32.EncodeToString(id.p384Priv[:]))
		}
	}

	return b.String()
}

// FromString parses the colon-delimited text form of spec.md §4.F:
// addr:variant:pubhex_or_b32[:privhex_or_b32]. It rejects malformed
// hex/base32, wrong-length payloads, reserved addresses, and (for P384) a
// declared address that doesn't match the one derived from the public key.
func FromString(s string) (*Identity, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return nil, ErrMalformedInput
	}

	addr, err := address.ParseString(fields[0])
	if err != nil {
		return nil, ErrMalformedInput
	}
	if addr.IsReserved() {
		return nil, ErrMalformedInput
	}

	var variant Variant
	switch fields[1] {
	case "0":
		variant = C25519
	case "1":
		variant = P384
	default:
		return nil, ErrUnsupportedVariant
	}

	id := &Identity{variant: variant, addr: addr}

	switch variant {
	case C25519:
		raw, err := hex.DecodeString(fields[2])
		if err != nil || len(raw) != c25519PubSize {
			return nil, ErrMalformedInput
		}
		copy(id.c25519Pub[:], raw)

		if len(fields) == 4 && len(fields[3]) > 0 {
			rawPriv, err := hex.DecodeString(fields[3])
			if err != nil || len(rawPriv) != c25519PrivSize {
				return nil, ErrMalformedInput
			}
			copy(id.c25519Priv[:], rawPriv)
			id.hasPrivate = true
		}

		id.fingerprint = address.Fingerprint{Address: addr, Hash: sha512.Sum384(id.c25519Pub[:])}

	case P384:
		raw, err := textBase32.DecodeString(fields[2])
		if err != nil || len(raw) != p384PubSize {
			return nil, ErrMalformedInput
		}
		copy(id.p384Pub[:], raw)

		if len(fields) == 4 && len(fields[3]) > 0 {
			rawPriv, err := textBase32.DecodeString(fields[3])
			if err != nil || len(rawPriv) != p384PrivSize {
				return nil, ErrMalformedInput
			}
			copy(id.p384Priv[:], rawPriv)
			id.hasPrivate = true
		}

		hash := sha512.Sum384(id.p384Pub[:])
		if addr != address.FromBytes(hash[:5]) {
			return nil, ErrMalformedInput
		}
		id.fingerprint = address.Fingerprint{Address: addr, Hash: hash}
	}

	return id, nil
}
