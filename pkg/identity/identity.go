package identity

import "github.com/meshveil/identity/pkg/address"

// Sizes of the fixed-layout key blobs, named after the spec's PUBLEN/PRIVLEN
// variant-defined constants.
const (
	c25519PubSize  = 64
	c25519PrivSize = 64
	c25519SigSize  = 64

	p384NonceSize     = 1
	p384C25519Size    = 64
	p384PointSize     = 49
	p384PubSize       = p384NonceSize + p384C25519Size + p384PointSize // PUBLEN = 114
	p384C25519PrivSize = 64
	p384ScalarSize    = 48
	p384PrivSize      = p384C25519PrivSize + p384ScalarSize // PRIVLEN = 112
	p384SigSize       = 96
)

// SignatureBufferSize is the capacity a caller must provide to Sign,
// covering the larger of the two variants' signature sizes.
const SignatureBufferSize = p384SigSize

// AgreementKeySize is the length in bytes of the shared secret Agree
// produces, regardless of variant.
const AgreementKeySize = 48

// Identity is an immutable, thread-confined value binding a short address
// to signing and key-agreement public keys, and optionally their matching
// private keys. It is a tagged union over the two variants: only the
// fields for the active Variant are populated.
type Identity struct {
	variant     Variant
	addr        address.Address
	fingerprint address.Fingerprint
	hasPrivate  bool

	c25519Pub  [c25519PubSize]byte
	c25519Priv [c25519PrivSize]byte

	p384Pub  [p384PubSize]byte
	p384Priv [p384PrivSize]byte
}

// Variant reports which identity generation this is.
func (id *Identity) Variant() Variant {
	return id.variant
}

// Address returns the identity's short network address.
func (id *Identity) Address() address.Address {
	return id.addr
}

// Fingerprint returns the identity's address + public-key-hash pair.
func (id *Identity) Fingerprint() address.Fingerprint {
	return id.fingerprint
}

// HasPrivate reports whether this identity carries private key material.
func (id *Identity) HasPrivate() bool {
	return id.hasPrivate
}

// PublicBytes returns the variant's canonical public key blob: 64 bytes for
// C25519, PUBLEN (114) bytes for P384.
func (id *Identity) PublicBytes() []byte {
	switch id.variant {
	case C25519:
		out := make([]byte, c25519PubSize)
		copy(out, id.c25519Pub[:])
		return out
	case P384:
		out := make([]byte, p384PubSize)
		copy(out, id.p384Pub[:])
		return out
	default:
		return nil
	}
}

// privateBytes returns the variant's canonical private key blob, or nil if
// hasPrivate is false.
func (id *Identity) privateBytes() []byte {
	if !id.hasPrivate {
		return nil
	}
	switch id.variant {
	case C25519:
		out := make([]byte, c25519PrivSize)
		copy(out, id.c25519Priv[:])
		return out
	case P384:
		out := make([]byte, p384PrivSize)
		copy(out, id.p384Priv[:])
		return out
	default:
		return nil
	}
}

// Zeroize overwrites all private key material in place. It is safe to call
// more than once and leaves public fields untouched.
func (id *Identity) Zeroize() {
	for i := range id.c25519Priv {
		id.c25519Priv[i] = 0
	}
	for i := range id.p384Priv {
		id.p384Priv[i] = 0
	}
	id.hasPrivate = false
}

// p384C25519Pub returns the embedded Curve25519/Ed25519 sub-key within a
// P384 identity's compound public blob.
func (id *Identity) p384C25519Pub() []byte {
	return id.p384Pub[p384NonceSize : p384NonceSize+p384C25519Size]
}

// p384Point returns the raw NIST P-384 point bytes within the compound
// public blob.
func (id *Identity) p384Point() []byte {
	return id.p384Pub[p384NonceSize+p384C25519Size:]
}

// p384Nonce returns the nonce byte used by the keygen acceptance loop.
func (id *Identity) p384Nonce() byte {
	return id.p384Pub[0]
}

func (id *Identity) p384C25519Priv() []byte {
	return id.p384Priv[:p384C25519PrivSize]
}

func (id *Identity) p384Scalar() []byte {
	return id.p384Priv[p384C25519PrivSize:]
}
