package session

import "errors"

var (
	// ErrMissingCookieName is returned when a configuration has no cookie name.
	ErrMissingCookieName = errors.New("session: missing cookie name")
	// ErrMissingPassword is returned when a configuration has no key set.
	ErrMissingPassword = errors.New("session: missing password")
	// ErrMissingTransport is returned when Load is called without a transport.
	ErrMissingTransport = errors.New("session: missing transport")
	// ErrHeadersSent is returned by transports that can no longer attach cookies
	// because the response was already written.
	ErrHeadersSent = errors.New("session: cannot set cookie, response headers already sent")
	// ErrKeyNotFound is returned by Decode and GetAs for absent fields.
	ErrKeyNotFound = errors.New("session: key not found")
	// ErrSaveSession wraps failures while sealing or emitting a session cookie.
	ErrSaveSession = errors.New("session: failed to save session")
	// ErrDestroySession wraps failures while emitting a deletion cookie.
	ErrDestroySession = errors.New("session: failed to destroy session")
)
