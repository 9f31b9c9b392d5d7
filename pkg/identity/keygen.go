package identity

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/curve25519"

	"github.com/meshveil/identity/internal/memlock"
	"github.com/meshveil/identity/internal/pow"
	"github.com/meshveil/identity/pkg/address"
)

// Generate mints a new identity of the given variant: it repeatedly draws
// fresh key material until the variant's proof-of-work predicate holds and
// the derived address is non-reserved, per the keygen & acceptance loop.
// Generation is CPU-bound and blocking; for P384 it is designed to take on
// the order of 1-2 seconds on a contemporary core.
func Generate(v Variant) (*Identity, error) {
	switch v {
	case C25519:
		return generateC25519()
	case P384:
		return generateP384()
	default:
		return nil, ErrUnsupportedVariant
	}
}

func generateC25519() (*Identity, error) {
	scratch := make([]byte, pow.MemorySizeV0)
	memlock.Lock(scratch)
	defer func() {
		memlock.Zero(scratch)
		memlock.Unlock(scratch)
	}()

	for {
		pub, priv, err := genC25519Keypair()
		if err != nil {
			return nil, err
		}

		digest := pow.FrankenHash(pub, scratch)
		if !pow.AcceptV0(digest) {
			continue
		}

		addr := address.FromBytes(digest[59:64])
		if addr.IsReserved() {
			continue
		}

		id := &Identity{variant: C25519, addr: addr, hasPrivate: true}
		copy(id.c25519Pub[:], pub)
		copy(id.c25519Priv[:], priv)
		id.fingerprint = address.Fingerprint{
			Address: addr,
			Hash:    sha512.Sum384(id.c25519Pub[:]),
		}
		return id, nil
	}
}

func generateP384() (*Identity, error) {
	scratch := make([]uint64, pow.MemoryWordsV1)
	memlock.LockWords(scratch)
	defer func() {
		memlock.ZeroUint64(scratch)
		memlock.UnlockWords(scratch)
	}()

	for {
		id := &Identity{variant: P384, hasPrivate: true}

		c25519Pub, c25519Priv, err := genC25519Keypair()
		if err != nil {
			return nil, err
		}
		copy(id.p384C25519Pub(), c25519Pub)
		copy(id.p384C25519Priv(), c25519Priv)

		if err := rerollP384Point(id); err != nil {
			return nil, err
		}
		id.p384Pub[0] = 0

		for !pow.HashV1(id.p384Pub[:], scratch) {
			id.p384Pub[0]++
			if id.p384Pub[0] == 0 {
				if err := rerollP384Point(id); err != nil {
					return nil, err
				}
			}
		}

		hash := sha512.Sum384(id.p384Pub[:])
		addr := address.FromBytes(hash[:5])
		if addr.IsReserved() {
			continue
		}

		id.addr = addr
		id.fingerprint = address.Fingerprint{Address: addr, Hash: hash}
		return id, nil
	}
}

func rerollP384Point(id *Identity) error {
	priv, pub, err := genP384Keypair()
	if err != nil {
		return err
	}
	copy(id.p384Point(), pub)
	copy(id.p384Scalar(), priv)
	return nil
}

// genC25519Keypair draws an independent Curve25519 agreement keypair and an
// independent Ed25519 signing keypair, concatenating their public and
// private halves per the C25519 payload layout (X25519 half first).
func genC25519Keypair() (pub, priv []byte, err error) {
	_, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	var xPriv [32]byte
	if _, err := rand.Read(xPriv[:]); err != nil {
		return nil, nil, err
	}
	xPub, err := curve25519.X25519(xPriv[:], curve25519.Basepoint)
	if err != nil {
		return nil, nil, err
	}

	pub = make([]byte, c25519PubSize)
	copy(pub[:32], xPub)
	copy(pub[32:], edPriv.Public().(ed25519.PublicKey))

	priv = make([]byte, c25519PrivSize)
	copy(priv[:32], xPriv[:])
	copy(priv[32:], edPriv.Seed())

	return pub, priv, nil
}

func genP384Keypair() (priv, pub []byte, err error) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	pub = elliptic.MarshalCompressed(elliptic.P384(), key.X, key.Y)
	priv = key.D.FillBytes(make([]byte, p384ScalarSize))
	return priv, pub, nil
}
