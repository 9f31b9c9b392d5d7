// Package handle implements the opaque handle lifecycle a host consumer
// uses to reach identities without touching *identity.Identity directly:
// new, fromString, validate, sign, verify, type, toString, hasPrivate,
// address, fingerprint, and delete.
package handle

import (
	"sync"

	"github.com/meshveil/identity/pkg/address"
	"github.com/meshveil/identity/pkg/identity"
)

// Handle is an opaque reference to a live identity. The zero value is the
// null handle and never refers to a live identity.
type Handle uintptr

const null Handle = 0

var (
	mu     sync.Mutex
	table  = make(map[Handle]*identity.Identity)
	nextID Handle = 1
)

func store(id *identity.Identity) Handle {
	mu.Lock()
	defer mu.Unlock()

	h := nextID
	nextID++
	table[h] = id
	return h
}

func lookup(h Handle) *identity.Identity {
	if h == null {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	return table[h]
}

// New generates a fresh identity of the given variant and returns an owning
// handle to it, or the null handle on failure.
func New(v identity.Variant) Handle {
	id, err := identity.Generate(v)
	if err != nil {
		return null
	}
	return store(id)
}

// FromString decodes the text form into an owning handle, or the null
// handle if decoding fails.
func FromString(s string) Handle {
	id, err := identity.FromString(s)
	if err != nil {
		return null
	}
	return store(id)
}

// Validate recomputes the proof-of-work and address binding for the
// identity behind h. An invalid handle is always rejected.
func Validate(h Handle) bool {
	id := lookup(h)
	if id == nil {
		return false
	}
	return id.Validate()
}

// Sign writes a signature over data into sig, returning the number of bytes
// written, or 0 on any failure (invalid handle, missing private key,
// undersized buffer).
func Sign(h Handle, data, sig []byte) int {
	id := lookup(h)
	if id == nil {
		return 0
	}
	return id.Sign(data, sig)
}

// Verify reports whether sig is a valid signature over data for h's public
// key. An invalid handle always fails verification.
func Verify(h Handle, data, sig []byte) bool {
	id := lookup(h)
	if id == nil {
		return false
	}
	return id.Verify(data, sig)
}

// Type reports the variant of the identity behind h. The second result is
// false if h is invalid.
func Type(h Handle) (identity.Variant, bool) {
	id := lookup(h)
	if id == nil {
		return 0, false
	}
	return id.Variant(), true
}

// ToString renders the identity behind h in text form. The second result is
// false if h is invalid.
func ToString(h Handle, includePrivate bool) (string, bool) {
	id := lookup(h)
	if id == nil {
		return "", false
	}
	if includePrivate {
		return id.String(), true
	}
	return id.PublicString(), true
}

// HasPrivate reports whether h's identity carries private key material. An
// invalid handle reports false.
func HasPrivate(h Handle) bool {
	id := lookup(h)
	if id == nil {
		return false
	}
	return id.HasPrivate()
}

// Address reports h's short network address. The second result is false if
// h is invalid.
func Address(h Handle) (address.Address, bool) {
	id := lookup(h)
	if id == nil {
		return 0, false
	}
	return id.Address(), true
}

// Fingerprint reports h's fingerprint. The second result is false if h is
// invalid.
func Fingerprint(h Handle) (address.Fingerprint, bool) {
	id := lookup(h)
	if id == nil {
		return address.Fingerprint{}, false
	}
	return id.Fingerprint(), true
}

// Delete zeroizes the identity's private material and releases the handle.
// It is a no-op on an already-deleted or invalid handle.
func Delete(h Handle) {
	if h == null {
		return
	}

	mu.Lock()
	id, ok := table[h]
	if ok {
		delete(table, h)
	}
	mu.Unlock()

	if ok {
		id.Zeroize()
	}
}
