package identity

import "errors"

// Error kinds per the subsystem's error handling design. Callers distinguish
// them with errors.Is; the boundary handle API (pkg/handle) collapses all of
// them to a null handle, a boolean false, or a zero byte count, per
// operation.
var (
	// ErrMalformedInput covers decode failures: bad field count, bad
	// hex/base32, wrong-size payload, a reserved address, or (P384) an
	// address that doesn't match its fingerprint.
	ErrMalformedInput = errors.New("identity: malformed input")
	// ErrInsufficientBuffer names the too-small-output-buffer kind. No
	// function in this package returns it: Sign reports an undersized
	// signature buffer by returning 0.
	ErrInsufficientBuffer = errors.New("identity: insufficient buffer")
	// ErrMissingPrivate is returned by Agree when the identity has no
	// private material. Sign reports the same condition by returning 0.
	ErrMissingPrivate = errors.New("identity: missing private key")
	// ErrInvalidPoW names the proof-of-work or address-binding violation
	// kind. No function in this package returns it: Validate reports such
	// a violation by returning false.
	ErrInvalidPoW = errors.New("identity: invalid proof of work")
	// ErrAllocationFailure names the scratch-allocation failure kind. No
	// function in this package returns it: Validate reports a fault while
	// obtaining scratch memory by returning false.
	ErrAllocationFailure = errors.New("identity: allocation failure")
	// ErrUnsupportedVariant is returned for an unknown variant tag on
	// decode or construction.
	ErrUnsupportedVariant = errors.New("identity: unsupported variant")
)
