package identity

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"math/big"

	"golang.org/x/crypto/curve25519"
)

// Ed25519SigningKey returns the Ed25519 private key embedded in a C25519
// identity, for host tooling that needs to hand it to another Ed25519-based
// protocol (e.g. deriving a Tor v3 onion address). The second result is
// false for a P384 identity or one without private key material.
func (id *Identity) Ed25519SigningKey() (ed25519.PrivateKey, bool) {
	if id.variant != C25519 || !id.hasPrivate {
		return nil, false
	}
	return ed25519.NewKeyFromSeed(id.c25519Priv[32:64]), true
}

// Sign writes a signature over data into sig and returns the number of
// bytes written, or 0 if sig is too small or this identity has no private
// key. Output sizes are fixed per variant: 64 bytes for C25519 (Ed25519),
// 96 bytes for P384 (ECDSA-P384 over a hash binding in the compound
// public key).
func (id *Identity) Sign(data, sig []byte) int {
	if !id.hasPrivate {
		return 0
	}

	switch id.variant {
	case C25519:
		if len(sig) < c25519SigSize {
			return 0
		}
		priv := ed25519.NewKeyFromSeed(id.c25519Priv[32:64])
		copy(sig, ed25519.Sign(priv, data))
		return c25519SigSize

	case P384:
		if len(sig) < p384SigSize {
			return 0
		}
		priv, err := p384PrivateKey(id)
		if err != nil {
			return 0
		}
		h := p384SignedHash(data, id.p384Pub[:])
		r, s, err := ecdsa.Sign(rand.Reader, priv, h[:])
		if err != nil {
			return 0
		}
		r.FillBytes(sig[:p384ScalarSize])
		s.FillBytes(sig[p384ScalarSize:p384SigSize])
		return p384SigSize

	default:
		return 0
	}
}

// Verify reports whether sig is a valid signature over data for this
// identity's public key.
func (id *Identity) Verify(data, sig []byte) bool {
	switch id.variant {
	case C25519:
		return ed25519.Verify(id.c25519Pub[32:64], data, sig)

	case P384:
		if len(sig) != p384SigSize {
			return false
		}
		pub, err := p384PublicKey(id.p384Point())
		if err != nil {
			return false
		}
		h := p384SignedHash(data, id.p384Pub[:])
		r := new(big.Int).SetBytes(sig[:p384ScalarSize])
		s := new(big.Int).SetBytes(sig[p384ScalarSize:p384SigSize])
		return ecdsa.Verify(pub, h[:], r, s)

	default:
		return false
	}
}

// p384SignedHash binds the full compound public-key blob into the signed
// hash, preventing substitution of the C25519 half embedded in a P384
// identity.
func p384SignedHash(data, pub []byte) [48]byte {
	buf := make([]byte, 0, len(data)+len(pub))
	buf = append(buf, data...)
	buf = append(buf, pub...)
	return sha512.Sum384(buf)
}

// Agree performs the variant-aware Diffie-Hellman agreement described by
// the sign/verify/agree matrix: C25519 identities always fall back to an
// X25519-only agreement; P384 identities run a compound X25519 + P384 ECDH
// against another P384 identity, hashed together.
func (id *Identity) Agree(peer *Identity) ([]byte, error) {
	if !id.hasPrivate {
		return nil, ErrMissingPrivate
	}

	switch id.variant {
	case C25519:
		return agreeX25519Only(id.c25519Priv[:32], peer)

	case P384:
		if peer.variant == P384 {
			return agreeCompound(id, peer)
		}
		return agreeX25519Only(id.p384C25519Priv()[:32], peer)

	default:
		return nil, ErrUnsupportedVariant
	}
}

func agreeX25519Only(selfScalar []byte, peer *Identity) ([]byte, error) {
	peerPub, err := peerX25519Pub(peer)
	if err != nil {
		return nil, err
	}

	raw, err := curve25519.X25519(selfScalar, peerPub)
	if err != nil {
		return nil, err
	}

	h := sha512.Sum512(raw)
	return append([]byte(nil), h[:AgreementKeySize]...), nil
}

func agreeCompound(self, peer *Identity) ([]byte, error) {
	xRaw, err := curve25519.X25519(self.p384C25519Priv()[:32], peer.p384C25519Pub()[:32])
	if err != nil {
		return nil, err
	}

	selfKey, err := p384PrivateKey(self)
	if err != nil {
		return nil, err
	}
	peerKey, err := p384PublicKey(peer.p384Point())
	if err != nil {
		return nil, err
	}

	selfECDH, err := selfKey.ECDH()
	if err != nil {
		return nil, err
	}
	peerECDH, err := peerKey.ECDH()
	if err != nil {
		return nil, err
	}
	pRaw, err := selfECDH.ECDH(peerECDH)
	if err != nil {
		return nil, err
	}

	combined := make([]byte, 0, len(xRaw)+len(pRaw))
	combined = append(combined, xRaw...)
	combined = append(combined, pRaw...)
	h := sha512.Sum384(combined)
	return h[:], nil
}

func peerX25519Pub(peer *Identity) ([]byte, error) {
	switch peer.variant {
	case C25519:
		return peer.c25519Pub[:32], nil
	case P384:
		return peer.p384C25519Pub()[:32], nil
	default:
		return nil, ErrUnsupportedVariant
	}
}

func p384PrivateKey(id *Identity) (*ecdsa.PrivateKey, error) {
	curve := elliptic.P384()
	x, y := elliptic.UnmarshalCompressed(curve, id.p384Point())
	if x == nil {
		return nil, ErrMalformedInput
	}
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         new(big.Int).SetBytes(id.p384Scalar()),
	}, nil
}

func p384PublicKey(point []byte) (*ecdsa.PublicKey, error) {
	curve := elliptic.P384()
	x, y := elliptic.UnmarshalCompressed(curve, point)
	if x == nil {
		return nil, ErrMalformedInput
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}
