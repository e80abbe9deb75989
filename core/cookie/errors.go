package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCookie indicates a name, value or attribute that cannot be
	// serialized into a valid Set-Cookie header.
	ErrInvalidCookie = errors.New("invalid cookie")

	// ErrSameSiteNoneInsecure indicates SameSite=None without the Secure flag,
	// which browsers reject.
	ErrSameSiteNoneInsecure = errors.New("SameSite=None requires the Secure attribute")

	// ErrInvalidSameSite indicates an unknown SameSite mode in configuration.
	ErrInvalidSameSite = errors.New("invalid SameSite value")

	// ErrInvalidPriority indicates an unknown Priority value.
	ErrInvalidPriority = errors.New("invalid cookie priority")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
