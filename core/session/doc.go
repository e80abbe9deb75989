// Package session keeps user sessions entirely inside a sealed cookie.
//
// There is no server-side store. The session fields are JSON-encoded, sealed
// with the configured key set (see package seal) and written to a single
// cookie. On the next request the cookie is unsealed back into the fields.
// A cookie that fails to verify for any reason (tampering, expiration, an
// unknown key id, a newer wire format) produces an empty session instead of
// an error.
//
// # Configuration
//
// Resolve merges caller options with the defaults: a 14 day ttl and
// HttpOnly, Secure, SameSite=Lax, Path=/ cookies.
//
//	keys, err := keyset.FromPassword(os.Getenv("SESSION_PASSWORD"))
//	if err != nil {
//		return err
//	}
//	cfg, err := session.Resolve("sid", keys,
//		session.WithTTL(time.Hour),
//		session.WithCookieOptions(cookie.WithDomain("example.com")),
//	)
//
// The cookie max-age is the ttl minus 60 seconds of clock skew, so the browser
// drops the cookie before the seal expires (ttl 1h gives Max-Age=3540). A ttl
// of zero gives the largest legal max-age. WithSessionCookie, or an explicit
// cookie.WithoutMaxAge, emits no max-age and seals without expiration.
// cookie.WithMaxAge is honored as given.
//
// LoadConfig and FromEnv build the same Config from SESSION_* environment
// variables (SESSION_COOKIE_NAME, SESSION_PASSWORD, SESSION_TTL,
// SESSION_COOKIE_SESSION_ONLY, SESSION_COOKIE_PATH, ...).
//
// # Lifecycle
//
//	sess, err := session.Load(ctx, sessiontransport.FromHTTP(w, r), cfg)
//	if err != nil {
//		return err // usage error: missing name, password or transport
//	}
//
//	sess.Set("userId", 42)
//	if err := sess.Save(ctx); err != nil {
//		return err // cookie.ErrCookieTooLarge, session.ErrHeadersSent, ...
//	}
//
//	id, err := session.GetAs[int](sess, "userId")
//
//	// logout
//	err = sess.Destroy(ctx)
//
// Save always reseals the current fields with the newest key id, so rotating
// passwords upgrades cookies as users come back. Destroy clears the fields and
// emits the cookie with Max-Age=0; the handle can still be filled and saved.
// UpdateConfig swaps the configuration used by later Save and Destroy calls,
// for example to extend the ttl after a "remember me" login.
//
// # Transports
//
// Transport is the cookie read/write boundary. Package sessiontransport
// provides adapters for http.ResponseWriter/*http.Request pairs, raw header
// pairs and get/set cookie stores; the sealing behavior is identical for all.
//
// A Session is owned by one request and is not safe for concurrent use.
package session
