package session

import "github.com/MaximKing1/iron-session/core/cookie"

// Transport reads the inbound session cookie and emits outbound cookies.
// Implementations live in package sessiontransport.
type Transport interface {
	// ReadCookie returns the named inbound cookie value.
	ReadCookie(name string) (string, bool)
	// WriteCookie emits a cookie with the given attributes.
	WriteCookie(name, value string, opts cookie.Options) error
}
