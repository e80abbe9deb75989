package seal

import (
	"log/slog"
	"time"
)

// Option configures a Sealer.
type Option func(*Sealer)

// WithTTL sets the seal lifetime. Zero means the seal never expires.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sealer) {
		s.ttl = ttl
	}
}

// WithSkew sets the clock-skew allowance applied when checking expiration.
func WithSkew(skew time.Duration) Option {
	return func(s *Sealer) {
		if skew >= 0 {
			s.skew = skew
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sealer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used to report rejected seals at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sealer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLegacyFormat makes the Sealer emit iron Fe26.2 seals (major version 2)
// instead of the current format. Useful while a fleet still runs readers that
// only understand version 2.
func WithLegacyFormat() Option {
	return func(s *Sealer) {
		s.legacy = true
	}
}
