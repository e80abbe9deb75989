// Package ironsession provides stateless, encrypted cookie sessions.
//
// Session data lives in the cookie itself, sealed with a password-derived key:
// ML-KEM-768 key encapsulation, XChaCha20-Poly1305 encryption and an Ed25519
// signature in the current wire format, with read support for iron Fe26.2
// seals. Nothing is stored server-side.
//
//	keys, err := keyset.FromPassword(os.Getenv("SESSION_PASSWORD")) // at least 32 characters
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg, err := ironsession.Resolve("sid", keys, session.WithTTL(time.Hour))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//		w = sessiontransport.TrackWrites(w)
//		sess, err := ironsession.GetIronSession(r.Context(), w, r, cfg)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusInternalServerError)
//			return
//		}
//		sess.Set("userId", 42)
//		if err := sess.Save(r.Context()); err != nil {
//			http.Error(w, err.Error(), http.StatusInternalServerError)
//			return
//		}
//	})
//
// Password rotation: pass every live password to keyset.New with increasing
// ids. Seals are always produced with the highest id and any id in the set
// is accepted when reading.
//
//	keys, err := keyset.New(map[int]string{1: oldPassword, 2: newPassword})
//
// SealData and UnsealData expose the sealing engine for tokens that do not
// travel in a session cookie.
//
// The building blocks live in subpackages: core/keyset (password sets),
// core/seal (wire formats), core/cookie (attributes and serialization),
// core/session (configuration and lifecycle), core/sessiontransport
// (request/response, header and store adapters) and middleware (net/http
// integration).
package ironsession
