package identity

import (
	"crypto/sha512"

	"github.com/meshveil/identity/internal/memlock"
	"github.com/meshveil/identity/internal/pow"
	"github.com/meshveil/identity/pkg/address"
)

// Validate recomputes the variant's proof of work and address binding for
// an identity drawn from the wire (decoded via FromString or Unmarshal) and
// reports whether both hold. Any allocation or primitive-level fault is
// reported as rejection, never propagated.
func (id *Identity) Validate() bool {
	if id.addr.IsReserved() || id.addr == 0 {
		return false
	}

	switch id.variant {
	case C25519:
		return id.validateC25519()
	case P384:
		return id.validateP384()
	default:
		return false
	}
}

func (id *Identity) validateC25519() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	scratch := make([]byte, pow.MemorySizeV0)
	memlock.Lock(scratch)
	defer func() {
		memlock.Zero(scratch)
		memlock.Unlock(scratch)
	}()

	digest := pow.FrankenHash(id.c25519Pub[:], scratch)
	return pow.AcceptV0(digest) && id.addr == address.FromBytes(digest[59:64])
}

func (id *Identity) validateP384() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	hash := sha512.Sum384(id.p384Pub[:])
	if id.addr != address.FromBytes(hash[:5]) {
		return false
	}

	scratch := make([]uint64, pow.MemoryWordsV1)
	memlock.LockWords(scratch)
	defer func() {
		memlock.ZeroUint64(scratch)
		memlock.UnlockWords(scratch)
	}()

	return pow.HashV1(id.p384Pub[:], scratch)
}
