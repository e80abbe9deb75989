package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/seal"
)

// DefaultTTL is the session lifetime used when none is configured (14 days).
const DefaultTTL = 14 * 24 * time.Hour

// Config is a resolved session configuration.
type Config struct {
	CookieName string
	Keys       *keyset.KeySet
	// TTL is the seal lifetime. Zero means the seal never expires.
	TTL           time.Duration
	CookieOptions cookie.Options
}

// DefaultCookieOptions returns the attributes every session cookie starts from.
func DefaultCookieOptions() cookie.Options {
	return cookie.Options{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

type resolveConfig struct {
	ttl           time.Duration
	cookieOpts    []cookie.Option
	sessionCookie bool
}

// Option is a functional option for Resolve.
type Option func(*resolveConfig)

// WithTTL sets the session time-to-live. Zero disables seal expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *resolveConfig) {
		c.ttl = ttl
	}
}

// WithCookieOptions overrides cookie attributes. An explicit cookie.WithMaxAge
// is kept as given; cookie.WithoutMaxAge behaves like WithSessionCookie.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(c *resolveConfig) {
		c.cookieOpts = append(c.cookieOpts, opts...)
	}
}

// WithSessionCookie makes the cookie last for the browser session only.
// The seal is then created without expiration.
func WithSessionCookie() Option {
	return func(c *resolveConfig) {
		c.sessionCookie = true
	}
}

// Resolve merges opts with the defaults and derives the cookie max-age.
//
// The max-age is the ttl minus seal.DefaultSkew, so the browser drops the
// cookie before the seal stops verifying. A ttl of zero maps to
// cookie.MaxAgeLimit. Ttls no longer than the skew are used unchanged.
func Resolve(cookieName string, keys *keyset.KeySet, opts ...Option) (Config, error) {
	if cookieName == "" {
		return Config{}, ErrMissingCookieName
	}
	if keys == nil {
		return Config{}, ErrMissingPassword
	}

	rc := resolveConfig{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.ttl < 0 {
		return Config{}, fmt.Errorf("session: %w", seal.ErrNegativeTTL)
	}

	// The marker tells options that never touched MaxAge apart from an
	// explicit WithoutMaxAge.
	marker := new(int)
	cookieOpts := DefaultCookieOptions()
	cookieOpts.MaxAge = marker
	for _, opt := range rc.cookieOpts {
		opt(&cookieOpts)
	}

	ttl := rc.ttl
	switch {
	case rc.sessionCookie || cookieOpts.MaxAge == nil:
		ttl = 0
		cookieOpts.MaxAge = nil
	case cookieOpts.MaxAge == marker:
		cookieOpts.MaxAge = maxAgeFor(ttl)
	}

	return Config{
		CookieName:    cookieName,
		Keys:          keys,
		TTL:           ttl,
		CookieOptions: cookieOpts.Clone(),
	}, nil
}

// MaxAge returns the cookie max-age in seconds and whether one is set.
func (c Config) MaxAge() (int, bool) {
	if c.CookieOptions.MaxAge == nil {
		return 0, false
	}
	return *c.CookieOptions.MaxAge, true
}

func maxAgeFor(ttl time.Duration) *int {
	if ttl == 0 {
		v := cookie.MaxAgeLimit
		return &v
	}

	seconds := int(ttl / time.Second)
	skew := int(seal.DefaultSkew / time.Second)
	if seconds > skew {
		seconds -= skew
	}
	if seconds > cookie.MaxAgeLimit {
		seconds = cookie.MaxAgeLimit
	}
	return &seconds
}
