package keyset

import "errors"

var (
	// ErrNoPassword indicates an empty password or an empty rotation map.
	ErrNoPassword = errors.New("keyset: missing password")

	// ErrPasswordTooShort indicates a secret shorter than MinPasswordLength bytes.
	ErrPasswordTooShort = errors.New("keyset: password must be at least 32 characters long")

	// ErrInvalidKeyID indicates a key id that is not a positive integer.
	ErrInvalidKeyID = errors.New("keyset: key id must be a positive integer")

	// ErrUnknownKeyID indicates a lookup of an id that is not in the set.
	ErrUnknownKeyID = errors.New("keyset: cannot find password")
)
