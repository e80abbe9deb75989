package sessiontransport

import (
	"net/http"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/session"
)

// HTTP reads cookies from a request and appends Set-Cookie headers to a response.
type HTTP struct {
	w http.ResponseWriter
	r *http.Request
}

var _ session.Transport = (*HTTP)(nil)

// FromHTTP creates a transport over a request/response pair.
// Wrap w with TrackWrites (or use a writer that reports Written) to get
// session.ErrHeadersSent instead of a silently dropped cookie.
func FromHTTP(w http.ResponseWriter, r *http.Request) *HTTP {
	return &HTTP{w: w, r: r}
}

// ReadCookie implements session.Transport.
func (t *HTTP) ReadCookie(name string) (string, bool) {
	if t == nil || t.r == nil {
		return "", false
	}
	return cookie.Get(t.r.Header, name)
}

// WriteCookie implements session.Transport. Prior Set-Cookie headers are kept.
func (t *HTTP) WriteCookie(name, value string, opts cookie.Options) error {
	if t == nil || t.w == nil {
		return session.ErrMissingTransport
	}
	if headersSent(t.w) {
		return session.ErrHeadersSent
	}

	header, err := cookie.Serialize(name, value, opts)
	if err != nil {
		return err
	}
	t.w.Header().Add("Set-Cookie", header)
	return nil
}

func headersSent(w http.ResponseWriter) bool {
	ww, ok := w.(WriteTracker)
	return ok && ww.Written()
}
