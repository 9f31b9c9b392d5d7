// Package identity implements the self-generated cryptographic credential
// that binds a short network address to long-lived signing and
// key-agreement keys, gated by a memory-hard proof of work.
package identity

// Variant distinguishes the two identity generations: the legacy "type-0"
// C25519 identity and the modern "type-1" P384 identity. The wire byte and
// the text-form digit are identical to the numeric value.
type Variant byte

const (
	// C25519 is the legacy identity variant, keyed by Curve25519 and
	// Ed25519, gated by the v0 frankenhash proof of work.
	C25519 Variant = 0
	// P384 is the modern identity variant, keyed by a compound
	// Curve25519 + NIST P-384 public key, gated by the v1 hash proof of
	// work.
	P384 Variant = 1
)

// String renders the variant as its single text digit.
func (v Variant) String() string {
	switch v {
	case C25519:
		return "0"
	case P384:
		return "1"
	default:
		return "?"
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == C25519 || v == P384
}
