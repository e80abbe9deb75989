package seal

import (
	"errors"

	"github.com/MaximKing1/iron-session/core/keyset"
)

// Usage errors. These are returned to the caller unchanged.
var (
	// ErrEmptySeal indicates a token without a payload portion.
	ErrEmptySeal = errors.New("seal: empty seal")

	// ErrNoKeys indicates a Sealer constructed without a key set.
	ErrNoKeys = errors.New("seal: missing key set")

	// ErrNegativeTTL indicates a negative time-to-live.
	ErrNegativeTTL = errors.New("seal: ttl must not be negative")
)

// Seal-validity errors. Unseal swallows every error of this class and reports
// an empty value; Open returns them so tooling can show the reason.
var (
	// ErrInvalidFormat indicates a component that cannot be decoded.
	ErrInvalidFormat = errors.New("seal: invalid format")

	// ErrComponentCount indicates a payload with the wrong number of components.
	ErrComponentCount = errors.New("seal: incorrect number of sealed components")

	// ErrBadSignature indicates a signature, MAC or embedded key that does not verify.
	ErrBadSignature = errors.New("seal: bad signature")

	// ErrDecryptionFailed indicates an authenticated decryption failure.
	ErrDecryptionFailed = errors.New("seal: decryption failed")

	// ErrExpired indicates a seal past its expiration (after skew).
	ErrExpired = errors.New("seal: expired seal")

	// ErrUnsupportedVersion indicates an unknown major version suffix.
	ErrUnsupportedVersion = errors.New("seal: unsupported version")

	// ErrUnknownKeyID indicates a seal produced with a key id missing from the set.
	ErrUnknownKeyID = keyset.ErrUnknownKeyID
)

var invalidErrors = []error{
	ErrInvalidFormat,
	ErrComponentCount,
	ErrBadSignature,
	ErrDecryptionFailed,
	ErrExpired,
	ErrUnsupportedVersion,
	ErrUnknownKeyID,
}

// IsInvalid reports whether err belongs to the seal-validity class:
// a tampered, expired, foreign or incompatible token.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range invalidErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
