package identity

import (
	"crypto/sha512"

	"github.com/meshveil/identity/pkg/address"
)

// Marshal encodes the identity into its compact wire form:
// address(5) || variant(1) || pub(varlen) || privlen(1) || priv(privlen).
// Private key material is omitted (privlen 0) when includePrivate is false
// or the identity has none.
func (id *Identity) Marshal(includePrivate bool) []byte {
	addrBytes := id.addr.Bytes()
	pub := id.PublicBytes()

	writePriv := includePrivate && id.hasPrivate
	var priv []byte
	if writePriv {
		priv = id.privateBytes()
	}

	size := address.Length + 1 + len(pub) + 1 + len(priv)
	out := make([]byte, size)

	copy(out[0:address.Length], addrBytes[:])
	out[address.Length] = byte(id.variant)

	pos := address.Length + 1
	copy(out[pos:pos+len(pub)], pub)
	pos += len(pub)

	out[pos] = byte(len(priv))
	pos++
	copy(out[pos:], priv)

	return out
}

// Unmarshal decodes the compact wire form produced by Marshal, returning the
// parsed identity and the number of bytes consumed from data. It rejects
// truncated buffers, reserved addresses, unsupported variants, malformed
// private-key lengths, and (for P384) a declared address that doesn't match
// SHA-384(pub).
func Unmarshal(data []byte) (*Identity, int, error) {
	if len(data) < address.Length+1 {
		return nil, 0, ErrMalformedInput
	}

	addr := address.FromBytes(data[:address.Length])
	if addr.IsReserved() {
		return nil, 0, ErrMalformedInput
	}
	variant := Variant(data[address.Length])

	switch variant {
	case C25519:
		return unmarshalC25519(addr, data)
	case P384:
		return unmarshalP384(addr, data)
	default:
		return nil, 0, ErrUnsupportedVariant
	}
}

func unmarshalC25519(addr address.Address, data []byte) (*Identity, int, error) {
	base := address.Length + 1
	if len(data) < base+c25519PubSize+1 {
		return nil, 0, ErrMalformedInput
	}

	id := &Identity{variant: C25519, addr: addr}
	copy(id.c25519Pub[:], data[base:base+c25519PubSize])
	id.fingerprint = address.Fingerprint{Address: addr, Hash: sha512.Sum384(id.c25519Pub[:])}

	privLenIdx := base + c25519PubSize
	privLen := int(data[privLenIdx])
	consumed := privLenIdx + 1

	switch privLen {
	case 0:
		return id, consumed, nil
	case c25519PrivSize:
		if len(data) < consumed+c25519PrivSize {
			return nil, 0, ErrMalformedInput
		}
		copy(id.c25519Priv[:], data[consumed:consumed+c25519PrivSize])
		id.hasPrivate = true
		return id, consumed + c25519PrivSize, nil
	default:
		return nil, 0, ErrMalformedInput
	}
}

func unmarshalP384(addr address.Address, data []byte) (*Identity, int, error) {
	base := address.Length + 1
	if len(data) < base+p384PubSize+1 {
		return nil, 0, ErrMalformedInput
	}

	id := &Identity{variant: P384, addr: addr}
	copy(id.p384Pub[:], data[base:base+p384PubSize])

	hash := sha512.Sum384(id.p384Pub[:])
	if addr != address.FromBytes(hash[:5]) {
		return nil, 0, ErrMalformedInput
	}
	id.fingerprint = address.Fingerprint{Address: addr, Hash: hash}

	privLenIdx := base + p384PubSize
	privLen := int(data[privLenIdx])
	consumed := privLenIdx + 1

	switch privLen {
	case 0:
		return id, consumed, nil
	case p384PrivSize:
		if len(data) < consumed+p384PrivSize {
			return nil, 0, ErrMalformedInput
		}
		copy(id.p384Priv[:], data[consumed:consumed+p384PrivSize])
		id.hasPrivate = true
		return id, consumed + p384PrivSize, nil
	default:
		return nil, 0, ErrMalformedInput
	}
}
