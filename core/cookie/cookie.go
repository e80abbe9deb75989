package cookie

import (
	"fmt"
	"net/http"
)

const (
	// MaxCookieSize is the maximum size of a serialized cookie (4KB).
	MaxCookieSize = 4096

	// MaxAgeLimit is the largest max-age browsers reliably accept (2^31-1).
	MaxAgeLimit = 2147483647
)

// Serialize renders name, value and opts as a Set-Cookie header value.
func Serialize(name, value string, opts Options) (string, error) {
	if opts.SameSite == http.SameSiteNoneMode && !opts.Secure {
		return "", fmt.Errorf("%w: cookie %q", ErrSameSiteNoneInsecure, name)
	}
	switch opts.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, opts.Priority)
	}

	c := &http.Cookie{
		Name:        name,
		Value:       value,
		Path:        opts.Path,
		Domain:      opts.Domain,
		Expires:     opts.Expires,
		Secure:      opts.Secure,
		HttpOnly:    opts.HttpOnly,
		SameSite:    opts.SameSite,
		Partitioned: opts.Partitioned,
	}
	if opts.MaxAge != nil {
		// net/http emits Max-Age=0 for negative values and omits it for zero.
		if *opts.MaxAge > 0 {
			c.MaxAge = *opts.MaxAge
		} else {
			c.MaxAge = -1
		}
	}

	if err := c.Valid(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	header := c.String()
	if opts.Priority != "" {
		header += "; Priority=" + string(opts.Priority)
	}
	return header, nil
}

// CheckSize returns ErrCookieTooLarge when header exceeds MaxCookieSize.
func CheckSize(name, header string) error {
	if len(header) > MaxCookieSize {
		return ErrCookieTooLarge{
			Name: name,
			Size: len(header),
			Max:  MaxCookieSize,
		}
	}
	return nil
}

// Get returns the value of the named cookie from request headers.
// Malformed pairs in the Cookie header are skipped.
func Get(h http.Header, name string) (string, bool) {
	r := http.Request{Header: h}
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Parse returns the value of the named cookie from a raw Cookie header.
func Parse(header, name string) (string, bool) {
	return Get(http.Header{"Cookie": {header}}, name)
}
