// Package middleware provides net/http middleware for sealed cookie sessions.
//
// Session loads the session cookie for each request, using
// sessiontransport.FromHTTP over a write-tracking response writer, and stores
// the *session.Session in the request context:
//
//	cfg, err := session.Resolve("sid", keys, session.WithTTL(24*time.Hour))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(middleware.Logging())
//	r.Use(middleware.Session(cfg))
//
//	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
//		sess := middleware.MustGetSession(r.Context())
//		sess.Set("userId", 42)
//		if err := sess.Save(r.Context()); err != nil {
//			http.Error(w, err.Error(), http.StatusInternalServerError)
//			return
//		}
//		w.WriteHeader(http.StatusNoContent)
//	})
//
// Sessions are never saved implicitly. Save and Destroy must run before the
// handler writes the status or body; afterwards they return
// session.ErrHeadersSent.
//
// SessionWithConfig adds request skipping, a Require predicate for protected
// routes and a custom ErrorHandler:
//
//	protected := middleware.SessionWithConfig(middleware.SessionConfig{
//		Config: cfg,
//		Require: func(s *session.Session) bool {
//			return s.Has("userId")
//		},
//		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
//			http.Redirect(w, r, "/login", http.StatusSeeOther)
//		},
//	})
//
// Logging writes one structured record per request and redacts the Cookie and
// Set-Cookie headers, which carry the seals.
package middleware
