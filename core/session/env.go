package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/MaximKing1/iron-session/core/config"
	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/keyset"
)

// EnvConfig holds session settings read from the environment.
// SESSION_PASSWORD is a plain password or a JSON object of id to password.
type EnvConfig struct {
	CookieName  string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	Password    string        `env:"SESSION_PASSWORD"`
	TTL         time.Duration `env:"SESSION_TTL" envDefault:"336h"`
	SessionOnly bool          `env:"SESSION_COOKIE_SESSION_ONLY" envDefault:"false"`
	Cookie      cookie.Config `envPrefix:"SESSION_"`
}

// FromEnv resolves a Config from environment settings.
func FromEnv(ec EnvConfig) (Config, error) {
	keys, err := keyset.Parse(ec.Password)
	if err != nil {
		if errors.Is(err, keyset.ErrNoPassword) {
			return Config{}, errors.Join(ErrMissingPassword, err)
		}
		return Config{}, err
	}

	cookieOpts, err := ec.Cookie.Options()
	if err != nil {
		return Config{}, fmt.Errorf("session: cookie config: %w", err)
	}

	opts := []Option{WithTTL(ec.TTL), WithCookieOptions(cookieOpts...)}
	if ec.SessionOnly {
		opts = append(opts, WithSessionCookie())
	}
	return Resolve(ec.CookieName, keys, opts...)
}

// LoadConfig reads EnvConfig from the environment (and .env) and resolves it.
func LoadConfig() (Config, error) {
	var ec EnvConfig
	if err := config.Load(&ec); err != nil {
		return Config{}, err
	}
	return FromEnv(ec)
}
