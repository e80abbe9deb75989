package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/logger"
	"github.com/MaximKing1/iron-session/core/seal"
)

// Session is the per-request handle over the decoded session fields.
// It is not safe for concurrent use; each request loads its own handle.
type Session struct {
	values    map[string]any
	cfg       Config
	transport Transport
	isNew     bool

	logger *slog.Logger
	now    func() time.Time
}

// LoadOption configures Load.
type LoadOption func(*Session)

// WithLogger sets the logger for seal rejections and cookie writes.
func WithLogger(l *slog.Logger) LoadOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for seal expiration.
func WithClock(now func() time.Time) LoadOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Load reads and unseals the session cookie named by cfg from t.
// A missing, empty, tampered, expired or foreign cookie yields an empty
// session; only usage errors are returned.
func Load(ctx context.Context, t Transport, cfg Config, opts ...LoadOption) (*Session, error) {
	if t == nil {
		return nil, ErrMissingTransport
	}
	if cfg.CookieName == "" {
		return nil, ErrMissingCookieName
	}
	if cfg.Keys == nil {
		return nil, ErrMissingPassword
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Session{
		values:    map[string]any{},
		cfg:       cfg,
		transport: t,
		isNew:     true,
		logger:    logger.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok := t.ReadCookie(cfg.CookieName)
	if !ok || raw == "" {
		return s, nil
	}

	sealer, err := s.sealer()
	if err != nil {
		return nil, err
	}

	v, err := sealer.Unseal(raw)
	switch {
	case errors.Is(err, seal.ErrEmptySeal):
		s.logger.DebugContext(ctx, "empty session seal", logger.CookieName(cfg.CookieName))
		return s, nil
	case err != nil:
		return nil, err
	}

	fields, ok := v.(map[string]any)
	if !ok {
		if v != nil {
			s.logger.DebugContext(ctx, "session seal is not an object", logger.CookieName(cfg.CookieName))
		}
		return s, nil
	}

	s.values = fields
	s.isNew = false
	return s, nil
}

// Save reseals the current fields with the current key and emits the cookie.
// It fails with cookie.ErrCookieTooLarge when the cookie exceeds 4096 bytes
// and with ErrHeadersSent when the transport can no longer write.
func (s *Session) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sealer, err := s.sealer()
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	token, err := sealer.Seal(s.values)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	header, err := cookie.Serialize(s.cfg.CookieName, token, s.cfg.CookieOptions)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	if err := cookie.CheckSize(s.cfg.CookieName, header); err != nil {
		s.logger.WarnContext(ctx, "session cookie too large",
			logger.CookieName(s.cfg.CookieName),
			logger.Size(len(header)),
		)
		return err
	}

	if err := s.transport.WriteCookie(s.cfg.CookieName, token, s.cfg.CookieOptions); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "session saved",
		logger.CookieName(s.cfg.CookieName),
		logger.KeyID(s.cfg.Keys.CurrentID()),
		logger.Size(len(header)),
	)
	return nil
}

// Destroy clears every field and emits a cookie that expires immediately.
// The handle stays usable; a later Save seals whatever fields exist then.
func (s *Session) Destroy(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clear(s.values)

	if err := s.transport.WriteCookie(s.cfg.CookieName, "", cookie.Expired(s.cfg.CookieOptions)); err != nil {
		if errors.Is(err, ErrHeadersSent) {
			return err
		}
		return errors.Join(ErrDestroySession, err)
	}

	s.logger.DebugContext(ctx, "session destroyed", logger.CookieName(s.cfg.CookieName))
	return nil
}

// UpdateConfig replaces the configuration used by later Save and Destroy
// calls. The loaded key set is kept when cfg.Keys is nil. Nothing is
// resealed until Save.
func (s *Session) UpdateConfig(cfg Config) {
	if cfg.Keys == nil {
		cfg.Keys = s.cfg.Keys
	}
	s.cfg = cfg
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// IsNew reports whether no valid inbound seal was found.
func (s *Session) IsNew() bool {
	return s.isNew
}

// Get returns the field stored under key.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores v under key. v must be JSON-serializable by the time Save runs.
func (s *Session) Set(key string, v any) {
	s.values[key] = v
}

// Delete removes key.
func (s *Session) Delete(key string) {
	delete(s.values, key)
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the field names in sorted order.
func (s *Session) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of fields.
func (s *Session) Len() int {
	return len(s.values)
}

// Values returns a shallow copy of the fields.
func (s *Session) Values() map[string]any {
	return maps.Clone(s.values)
}

// Clear removes every field without emitting a cookie.
func (s *Session) Clear() {
	clear(s.values)
}

// Decode converts the field under key into dst through its JSON form.
func (s *Session) Decode(key string, dst any) error {
	v, ok := s.values[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("session: decode %q: %w", key, err)
	}
	return nil
}

// GetAs returns the field under key as T. Values read back from a cookie
// carry JSON types (float64, map[string]any); they are converted through
// their JSON form.
func GetAs[T any](s *Session, key string) (T, error) {
	var zero T
	v, ok := s.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if typed, ok := v.(T); ok {
		return typed, nil
	}

	var out T
	if err := s.Decode(key, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func (s *Session) sealer() (*seal.Sealer, error) {
	return seal.New(s.cfg.Keys,
		seal.WithTTL(s.cfg.TTL),
		seal.WithClock(s.now),
		seal.WithLogger(s.logger),
	)
}
