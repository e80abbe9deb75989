package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// slog drops empty attributes, so log.Debug("msg", logger.Error(err)) is safe
// without an explicit nil check.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Reason records why a seal was rejected. Returns empty Attr for nil errors.
func Reason(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("reason", err.Error())
}

// ============================================================================
// Sessions and Seals
// ============================================================================

// CookieName creates an attribute for the session cookie name.
func CookieName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("cookie", name)
}

// KeyID creates an attribute for a password key id.
func KeyID(id int) slog.Attr {
	return slog.Int("key_id", id)
}

// Version creates an attribute for a seal major version.
func Version(v int) slog.Attr {
	return slog.Int("seal_version", v)
}

// Size creates an attribute for a byte length.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Component identifies the emitting package.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// TTL creates an attribute for a session time-to-live.
func TTL(d time.Duration) slog.Attr {
	return slog.Duration("ttl", d)
}

// ============================================================================
// HTTP
// ============================================================================

// Method creates an attribute for an HTTP method.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path creates an attribute for a request path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// StatusCode creates an attribute for an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// BytesOut creates an attribute for a response body size.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// RemoteAddr creates an attribute for the client address.
func RemoteAddr(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote_addr", addr)
}
