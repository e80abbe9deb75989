package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MaximKing1/iron-session/core/logger"
	"github.com/MaximKing1/iron-session/core/session"
	"github.com/MaximKing1/iron-session/core/sessiontransport"
)

type sessionKey struct{}

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Config is the resolved session configuration (required).
	Config session.Config
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Logger for structured logging (default: discard)
	Logger *slog.Logger
	// Require rejects requests whose session does not satisfy it,
	// for example a check for a "userId" field.
	Require func(sess *session.Session) bool
	// ErrorHandler writes the response for load failures and Require rejections.
	// Default: 500 for load failures, 401 for Require rejections.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Session creates middleware that loads the sealed session cookie for every
// request and stores the handle in the request context. Handlers mutate the
// session and call Save or Destroy themselves, before writing the body.
//
//	r.Use(middleware.Session(cfg))
//
//	func dashboard(w http.ResponseWriter, r *http.Request) {
//		sess := middleware.MustGetSession(r.Context())
//		sess.Set("visits", visits+1)
//		if err := sess.Save(r.Context()); err != nil {
//			http.Error(w, err.Error(), http.StatusInternalServerError)
//			return
//		}
//		...
//	}
func Session(cfg session.Config) func(http.Handler) http.Handler {
	return SessionWithConfig(SessionConfig{Config: cfg})
}

// SessionWithConfig creates a session middleware with custom configuration.
// The response writer passed downstream tracks writes, so Save after the
// body has started fails with session.ErrHeadersSent.
func SessionWithConfig(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.Config.CookieName == "" {
		panic("session middleware: cookie name is required")
	}
	if cfg.Config.Keys == nil {
		panic("session middleware: keys are required")
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			if errors.Is(err, ErrSessionRejected) {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			tw := sessiontransport.TrackWrites(w)

			sess, err := session.Load(ctx, sessiontransport.FromHTTP(tw, r), cfg.Config,
				session.WithLogger(cfg.Logger),
			)
			if err != nil {
				cfg.Logger.ErrorContext(ctx, "session middleware: failed to load session",
					logger.CookieName(cfg.Config.CookieName),
					logger.Error(err),
				)
				cfg.ErrorHandler(tw, r, err)
				return
			}

			if cfg.Require != nil && !cfg.Require(sess) {
				cfg.ErrorHandler(tw, r, ErrSessionRejected)
				return
			}

			next.ServeHTTP(tw, r.WithContext(WithSession(ctx, sess)))
		})
	}
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok && sess != nil
}

// MustGetSession retrieves the session from context or panics if not found.
// Use this when session existence is guaranteed by middleware.
func MustGetSession(ctx context.Context) *session.Session {
	sess, ok := GetSession(ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}
