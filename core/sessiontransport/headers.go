package sessiontransport

import (
	"net/http"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/session"
)

// Headers is a transport over a pair of header maps, for hosts that expose
// request and response headers without a ResponseWriter.
type Headers struct {
	request  http.Header
	response http.Header
}

var _ session.Transport = (*Headers)(nil)

// FromHeaders creates a header-pair transport. response may be nil for
// read-only use, in which case writes fail with ErrReadOnly.
func FromHeaders(request, response http.Header) *Headers {
	return &Headers{request: request, response: response}
}

// ReadCookie implements session.Transport.
func (t *Headers) ReadCookie(name string) (string, bool) {
	if t.request == nil {
		return "", false
	}
	return cookie.Get(t.request, name)
}

// WriteCookie implements session.Transport.
func (t *Headers) WriteCookie(name, value string, opts cookie.Options) error {
	if t.response == nil {
		return ErrReadOnly
	}
	header, err := cookie.Serialize(name, value, opts)
	if err != nil {
		return err
	}
	t.response.Add("Set-Cookie", header)
	return nil
}
