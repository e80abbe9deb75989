package cookie

import (
	"net/http"
	"time"
)

// Priority is the non-standard Priority cookie attribute.
type Priority string

// Priority values understood by Chromium-based browsers.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Options configures cookie attributes for HTTP cookie operations.
type Options struct {
	Path   string
	Domain string
	// MaxAge in seconds. Nil omits the attribute (a browser-session cookie);
	// zero or below expires the cookie immediately.
	MaxAge   *int
	Expires  time.Time
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
	Priority Priority
	// Partitioned opts into CHIPS partitioned storage. Requires Secure.
	Partitioned bool
}

// Option is a functional option for configuring cookie options.
type Option func(*Options)

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets the cookie max-age in seconds.
// Zero or negative values delete the cookie immediately.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = &seconds
	}
}

// WithoutMaxAge removes the max-age attribute, making a browser-session cookie.
func WithoutMaxAge() Option {
	return func(o *Options) {
		o.MaxAge = nil
	}
}

// WithExpires sets the expires attribute.
func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

// WithSecure sets the secure flag, ensuring cookies are only sent over HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithPriority sets the Priority attribute.
func WithPriority(p Priority) Option {
	return func(o *Options) {
		o.Priority = p
	}
}

// WithPartitioned sets the Partitioned attribute.
func WithPartitioned(partitioned bool) Option {
	return func(o *Options) {
		o.Partitioned = partitioned
	}
}

// HasMaxAge reports whether a max-age attribute is set.
func (o Options) HasMaxAge() bool {
	return o.MaxAge != nil
}

// Clone returns a copy of o that shares no memory with it.
func (o Options) Clone() Options {
	if o.MaxAge != nil {
		v := *o.MaxAge
		o.MaxAge = &v
	}
	return o
}

// Apply creates a new Options by copying base and applying opts.
// base is never mutated.
func Apply(base Options, opts ...Option) Options {
	result := base.Clone()
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// Expired returns a copy of o that deletes the cookie on the client.
func Expired(o Options) Options {
	return Apply(o, WithMaxAge(0))
}
