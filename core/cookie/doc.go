// Package cookie renders and reads the HTTP cookies that carry sealed sessions.
//
// It covers the attribute surface only: functional options for Path, Domain,
// Max-Age, Expires, Secure, HttpOnly, SameSite, Priority and Partitioned,
// RFC 6265 serialization through net/http, lenient Cookie header lookup and
// the 4 KB size guard. Sealing is done elsewhere.
//
// # Serialization
//
//	opts := cookie.Apply(cookie.Options{Path: "/"},
//		cookie.WithMaxAge(3540),
//		cookie.WithHTTPOnly(true),
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteLaxMode),
//	)
//	header, err := cookie.Serialize("sid", token, opts)
//	if err != nil {
//		return err
//	}
//	if err := cookie.CheckSize("sid", header); err != nil {
//		return err // cookie.ErrCookieTooLarge
//	}
//	w.Header().Add("Set-Cookie", header)
//
// A nil MaxAge omits the attribute, so the cookie lives for the browser
// session. WithMaxAge(0) writes Max-Age=0, which deletes the cookie;
// Expired(opts) is a shorthand for that.
//
// # Reading
//
//	value, ok := cookie.Get(r.Header, "sid")
//	value, ok = cookie.Parse("a=1; sid=xyz", "sid")
//
// # Configuration
//
// Config is loaded from the environment (COOKIE_PATH, COOKIE_DOMAIN,
// COOKIE_SECURE, COOKIE_HTTP_ONLY, COOKIE_SAME_SITE, COOKIE_PRIORITY,
// COOKIE_PARTITIONED) and converted with Config.Options:
//
//	var cfg cookie.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	opts, err := cfg.Options()
//
// # Errors
//
// Serialize returns ErrInvalidCookie (wrapping the net/http reason) for
// invalid names, values or domains, ErrSameSiteNoneInsecure for SameSite=None
// without Secure and ErrInvalidPriority for unknown priorities. CheckSize
// returns the typed ErrCookieTooLarge with the offending size.
package cookie
