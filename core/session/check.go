package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaximKing1/iron-session/core/seal"
)

// ErrCheckFailed is returned by Check when a test seal does not round-trip.
var ErrCheckFailed = errors.New("session: key check failed")

// Check seals and reopens a sample value with the configured keys. It fits
// health.Readiness and catches unusable key material before traffic does.
func (c Config) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Keys == nil {
		return ErrMissingPassword
	}

	s, err := seal.New(c.Keys, seal.WithTTL(c.TTL))
	if err != nil {
		return errors.Join(ErrCheckFailed, err)
	}
	token, err := s.Seal(map[string]any{"check": true})
	if err != nil {
		return errors.Join(ErrCheckFailed, err)
	}
	plaintext, err := s.Open(token)
	if err != nil {
		return errors.Join(ErrCheckFailed, err)
	}
	if string(plaintext) != `{"check":true}` {
		return fmt.Errorf("%w: unexpected plaintext %q", ErrCheckFailed, plaintext)
	}
	return nil
}
