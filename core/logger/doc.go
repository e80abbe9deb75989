// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers a small factory for text or JSON loggers and a set of nil-safe
// attribute helpers used across the session packages:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(logger.Component("session")),
//	)
//
//	log.Debug("seal rejected",
//		logger.CookieName("sid"),
//		logger.Reason(err),
//	)
//
// Helpers that receive a nil error or an empty string return an empty
// slog.Attr, which slog handlers drop.
package logger
