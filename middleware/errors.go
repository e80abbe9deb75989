package middleware

import "errors"

// ErrSessionRejected is passed to SessionConfig.ErrorHandler when Require fails.
var ErrSessionRejected = errors.New("middleware: session rejected")
