package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config provides environment-based configuration for cookie attributes.
// Fields left empty keep the defaults of the consuming package.
type Config struct {
	Path        string `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure      bool   `env:"COOKIE_SECURE" envDefault:"true"`
	HttpOnly    bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
	Priority    string `env:"COOKIE_PRIORITY" envDefault:""`
	Partitioned bool   `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: "lax",
	}
}

// Options converts the configuration into cookie options.
func (c Config) Options() ([]Option, error) {
	sameSite, err := ParseSameSite(c.SameSite)
	if err != nil {
		return nil, err
	}
	priority, err := ParsePriority(c.Priority)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithSecure(c.Secure),
		WithHTTPOnly(c.HttpOnly),
		WithSameSite(sameSite),
		WithPartitioned(c.Partitioned),
	}
	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if priority != "" {
		opts = append(opts, WithPriority(priority))
	}
	return opts, nil
}

// ParseSameSite maps "lax", "strict", "none" or "" (default mode) to http.SameSite.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// ParsePriority maps "low", "medium", "high" or "" to a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}
