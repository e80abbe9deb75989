package ironsession

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/seal"
	"github.com/MaximKing1/iron-session/core/session"
	"github.com/MaximKing1/iron-session/core/sessiontransport"
)

// Re-exported names for callers that only need the top-level API.
type (
	Session = session.Session
	Config  = session.Config
	KeySet  = keyset.KeySet
)

// Resolve builds a Config with the default ttl and cookie attributes.
func Resolve(cookieName string, keys *keyset.KeySet, opts ...session.Option) (Config, error) {
	return session.Resolve(cookieName, keys, opts...)
}

// ErrUntrackedWriter is returned by GetIronSession for a response writer that
// cannot report whether its headers were sent.
var ErrUntrackedWriter = errors.New("ironsession: response writer does not implement sessiontransport.WriteTracker; wrap it with sessiontransport.TrackWrites")

// GetIronSession loads the session carried by r. Save appends a Set-Cookie
// header to w and fails with session.ErrHeadersSent once the body has started.
//
// w must implement sessiontransport.WriteTracker. Wrap a plain writer once,
// and write the response through the wrapper:
//
//	w = sessiontransport.TrackWrites(w)
//	sess, err := ironsession.GetIronSession(ctx, w, r, cfg)
//
// Writers from middleware.Session and middleware.Logging already qualify.
func GetIronSession(ctx context.Context, w http.ResponseWriter, r *http.Request, cfg Config, opts ...session.LoadOption) (*Session, error) {
	if w == nil || r == nil {
		return nil, session.ErrMissingTransport
	}
	if _, ok := w.(sessiontransport.WriteTracker); !ok {
		return nil, ErrUntrackedWriter
	}
	return session.Load(ctx, sessiontransport.FromHTTP(w, r), cfg, opts...)
}

// GetIronSessionFromStore loads the session from a get/set cookie store.
func GetIronSessionFromStore(ctx context.Context, store sessiontransport.CookieStore, cfg Config, opts ...session.LoadOption) (*Session, error) {
	if store == nil {
		return nil, session.ErrMissingTransport
	}
	return session.Load(ctx, sessiontransport.FromStore(store), cfg, opts...)
}

// SealData seals v for use outside a cookie, for example in a magic link.
// A ttl of zero produces a seal that never expires.
func SealData(v any, keys *keyset.KeySet, ttl time.Duration) (string, error) {
	return seal.Seal(v, keys, ttl)
}

// UnsealData reverses SealData. An invalid, expired or foreign token yields
// (nil, nil).
func UnsealData(token string, keys *keyset.KeySet, ttl time.Duration) (any, error) {
	return seal.Unseal(token, keys, ttl)
}
