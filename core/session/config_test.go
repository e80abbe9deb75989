package session_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximKing1/iron-session/core/config"
	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/seal"
	"github.com/MaximKing1/iron-session/core/session"
)

var testPassword = strings.Repeat("x", 32)

func testKeys(t *testing.T) *keyset.KeySet {
	t.Helper()
	keys, err := keyset.FromPassword(testPassword)
	require.NoError(t, err)
	return keys
}

func TestResolve(t *testing.T) {
	t.Parallel()

	keys := testKeys(t)

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.Resolve("sid", keys)
		require.NoError(t, err)

		assert.Equal(t, "sid", cfg.CookieName)
		assert.Same(t, keys, cfg.Keys)
		assert.Equal(t, 1209600*time.Second, cfg.TTL)

		maxAge, ok := cfg.MaxAge()
		require.True(t, ok)
		assert.Equal(t, 1209540, maxAge)

		o := cfg.CookieOptions
		assert.Equal(t, "/", o.Path)
		assert.True(t, o.HttpOnly)
		assert.True(t, o.Secure)
		assert.Equal(t, http.SameSiteLaxMode, o.SameSite)
	})

	t.Run("ttl minus skew", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.Resolve("sid", keys, session.WithTTL(time.Hour))
		require.NoError(t, err)
		maxAge, _ := cfg.MaxAge()
		assert.Equal(t, 3540, maxAge)
	})

	t.Run("zero ttl uses the max-age limit", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.Resolve("sid", keys, session.WithTTL(0))
		require.NoError(t, err)
		maxAge, ok := cfg.MaxAge()
		require.True(t, ok)
		assert.Equal(t, 2147483647, maxAge)
		assert.Zero(t, cfg.TTL)
	})

	t.Run("ttl shorter than skew", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.Resolve("sid", keys, session.WithTTL(30*time.Second))
		require.NoError(t, err)
		maxAge, _ := cfg.MaxAge()
		assert.Equal(t, 30, maxAge)
	})

	t.Run("session cookie", func(t *testing.T) {
		t.Parallel()
		for name, opt := range map[string]session.Option{
			"option":        session.WithSessionCookie(),
			"cookie option": session.WithCookieOptions(cookie.WithoutMaxAge()),
		} {
			cfg, err := session.Resolve("sid", keys, session.WithTTL(time.Hour), opt)
			require.NoError(t, err, name)
			_, ok := cfg.MaxAge()
			assert.False(t, ok, name)
			assert.Zero(t, cfg.TTL, name)
		}
	})

	t.Run("explicit max-age is honored", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.Resolve("sid", keys,
			session.WithTTL(time.Hour),
			session.WithCookieOptions(cookie.WithMaxAge(100), cookie.WithDomain("example.com")),
		)
		require.NoError(t, err)
		maxAge, _ := cfg.MaxAge()
		assert.Equal(t, 100, maxAge)
		assert.Equal(t, time.Hour, cfg.TTL)
		assert.Equal(t, "example.com", cfg.CookieOptions.Domain)
		assert.True(t, cfg.CookieOptions.HttpOnly, "unrelated defaults survive")
	})

	t.Run("usage errors", func(t *testing.T) {
		t.Parallel()
		_, err := session.Resolve("", keys)
		assert.ErrorIs(t, err, session.ErrMissingCookieName)

		_, err = session.Resolve("sid", nil)
		assert.ErrorIs(t, err, session.ErrMissingPassword)

		_, err = session.Resolve("sid", keys, session.WithTTL(-time.Second))
		assert.ErrorIs(t, err, seal.ErrNegativeTTL)
	})
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("plain password", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.FromEnv(session.EnvConfig{
			CookieName: "app",
			Password:   testPassword,
			TTL:        time.Hour,
			Cookie:     cookie.Config{Path: "/", Secure: true, HttpOnly: true, SameSite: "strict"},
		})
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.CookieName)
		assert.Equal(t, 1, cfg.Keys.CurrentID())
		assert.Equal(t, http.SameSiteStrictMode, cfg.CookieOptions.SameSite)
		maxAge, _ := cfg.MaxAge()
		assert.Equal(t, 3540, maxAge)
	})

	t.Run("rotation map and session only", func(t *testing.T) {
		t.Parallel()
		cfg, err := session.FromEnv(session.EnvConfig{
			CookieName:  "app",
			Password:    `{"1":"` + testPassword + `","2":"` + strings.Repeat("y", 32) + `"}`,
			TTL:         time.Hour,
			SessionOnly: true,
			Cookie:      cookie.DefaultConfig(),
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, cfg.Keys.IDs())
		_, ok := cfg.MaxAge()
		assert.False(t, ok)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := session.FromEnv(session.EnvConfig{CookieName: "app"})
		assert.ErrorIs(t, err, session.ErrMissingPassword)

		_, err = session.FromEnv(session.EnvConfig{CookieName: "app", Password: "short"})
		assert.ErrorIs(t, err, keyset.ErrPasswordTooShort)

		_, err = session.FromEnv(session.EnvConfig{
			CookieName: "app",
			Password:   testPassword,
			Cookie:     cookie.Config{SameSite: "often"},
		})
		assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SESSION_COOKIE_NAME", "envsid")
	t.Setenv("SESSION_PASSWORD", testPassword)
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_COOKIE_DOMAIN", "env.test")
	t.Setenv("SESSION_COOKIE_SAME_SITE", "none")
	config.Reset()
	t.Cleanup(config.Reset)

	cfg, err := session.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "envsid", cfg.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.TTL)
	assert.Equal(t, "env.test", cfg.CookieOptions.Domain)
	assert.Equal(t, http.SameSiteNoneMode, cfg.CookieOptions.SameSite)
	assert.True(t, cfg.CookieOptions.Secure)
	maxAge, _ := cfg.MaxAge()
	assert.Equal(t, 7140, maxAge)
}

func TestConfig_Check(t *testing.T) {
	t.Parallel()

	cfg, err := session.Resolve("sid", testKeys(t))
	require.NoError(t, err)
	assert.NoError(t, cfg.Check(context.Background()))

	assert.ErrorIs(t, session.Config{CookieName: "sid"}.Check(context.Background()), session.ErrMissingPassword)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cfg.Check(ctx), context.Canceled)
}
