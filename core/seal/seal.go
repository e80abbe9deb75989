package seal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/logger"
)

const (
	// VersionDelimiter separates the payload from the major version.
	VersionDelimiter = "~"

	// MajorVersion is the wire format produced by default.
	MajorVersion = 3

	// LegacyMajorVersion is the iron Fe26.2 wire format.
	LegacyMajorVersion = 2

	// DefaultSkew is the clock-skew allowance for expiration checks.
	DefaultSkew = 60 * time.Second

	componentDelimiter = "*"
)

// Sealer turns values into opaque seals and back, using a shared key set.
// A Sealer is immutable and safe for concurrent use.
type Sealer struct {
	keys   *keyset.KeySet
	ttl    time.Duration
	skew   time.Duration
	now    func() time.Time
	logger *slog.Logger
	legacy bool
}

// New creates a Sealer over keys.
func New(keys *keyset.KeySet, opts ...Option) (*Sealer, error) {
	if keys == nil {
		return nil, ErrNoKeys
	}

	s := &Sealer{
		keys:   keys,
		skew:   DefaultSkew,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.ttl < 0 {
		return nil, ErrNegativeTTL
	}

	return s, nil
}

// Seal serializes v and seals it with the current key.
// A []byte value is sealed as-is; anything else is encoded as JSON.
func (s *Sealer) Seal(v any) (string, error) {
	plaintext, err := encodeValue(v)
	if err != nil {
		return "", err
	}

	if s.legacy {
		sealed, err := s.sealIron(plaintext)
		if err != nil {
			return "", err
		}
		return sealed + VersionDelimiter + strconv.Itoa(LegacyMajorVersion), nil
	}

	sealed, err := s.sealV3(plaintext)
	if err != nil {
		return "", err
	}
	return sealed + VersionDelimiter + strconv.Itoa(MajorVersion), nil
}

// Unseal verifies and decrypts token. JSON plaintext is decoded into the
// usual encoding/json types (map[string]any, []any, float64, ...); any other
// plaintext is returned as []byte.
//
// A tampered, expired, foreign or incompatible token yields (nil, nil).
// Only usage errors and unexpected failures are returned.
func (s *Sealer) Unseal(token string) (any, error) {
	plaintext, err := s.Open(token)
	if err != nil {
		if IsInvalid(err) {
			s.logger.Debug("seal rejected", logger.Component("seal"), logger.Reason(err))
			return nil, nil
		}
		return nil, err
	}

	return decodeValue(plaintext), nil
}

// Open verifies and decrypts token and returns the raw plaintext.
// Unlike Unseal it reports seal-validity errors; use IsInvalid to classify them.
func (s *Sealer) Open(token string) ([]byte, error) {
	payload, version, versioned := splitVersion(token)
	if payload == "" {
		return nil, ErrEmptySeal
	}

	if !versioned {
		plaintext, err := s.openIron(payload)
		if err != nil {
			return nil, err
		}
		return unwrapPersistent(plaintext)
	}

	n, err := strconv.Atoi(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	switch n {
	case MajorVersion:
		return s.openV3(payload)
	case LegacyMajorVersion:
		return s.openIron(payload)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, n)
	}
}

// TTL returns the configured seal lifetime.
func (s *Sealer) TTL() time.Duration {
	return s.ttl
}

// expiration returns the unix-millisecond expiration for a seal made now,
// or an empty string when the seal never expires.
func (s *Sealer) expiration() string {
	if s.ttl == 0 {
		return ""
	}
	return strconv.FormatInt(s.now().Add(s.ttl).UnixMilli(), 10)
}

// checkExpiration validates a unix-millisecond expiration component.
func (s *Sealer) checkExpiration(exp string) error {
	if exp == "" {
		return nil
	}
	ms, err := parseExpiration(exp)
	if err != nil {
		return err
	}
	if ms <= s.now().Add(-s.skew).UnixMilli() {
		return ErrExpired
	}
	return nil
}

func parseExpiration(exp string) (int64, error) {
	if exp == "" {
		return 0, nil
	}
	for _, c := range exp {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: expiration %q", ErrInvalidFormat, exp)
		}
	}
	ms, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expiration %q", ErrInvalidFormat, exp)
	}
	return ms, nil
}

func splitVersion(token string) (payload, version string, versioned bool) {
	i := strings.LastIndex(token, VersionDelimiter)
	if i < 0 {
		return token, "", false
	}
	return token[:i], token[i+len(VersionDelimiter):], true
}

func encodeValue(v any) ([]byte, error) {
	if b, ok := v.([]byte); ok {
		return b, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("seal: marshal value: %w", err)
	}
	return b, nil
}

func decodeValue(plaintext []byte) any {
	if !json.Valid(plaintext) {
		return plaintext
	}
	var v any
	if err := json.Unmarshal(plaintext, &v); err != nil {
		return plaintext
	}
	return v
}

// unwrapPersistent extracts the session fields of a pre-versioned seal,
// which stored them under a "persistent" key.
func unwrapPersistent(plaintext []byte) ([]byte, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: unversioned seal is not an object", ErrInvalidFormat)
	}
	persistent, ok := wrapper["persistent"]
	if !ok || string(persistent) == "null" {
		return []byte("{}"), nil
	}
	return persistent, nil
}

// Seal seals v with keys and ttl using the current format.
func Seal(v any, keys *keyset.KeySet, ttl time.Duration) (string, error) {
	s, err := New(keys, WithTTL(ttl))
	if err != nil {
		return "", err
	}
	return s.Seal(v)
}

// Unseal unseals token with keys. An invalid token yields (nil, nil).
func Unseal(token string, keys *keyset.KeySet, ttl time.Duration) (any, error) {
	s, err := New(keys, WithTTL(ttl))
	if err != nil {
		return nil, err
	}
	return s.Unseal(token)
}
