package seal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Header is the unauthenticated metadata of a seal.
// Nothing in it is verified; use it for diagnostics only.
type Header struct {
	// Version is the major version; 1 for unversioned iron seals.
	Version int
	KeyID   int
	// Expiration is zero for seals that never expire.
	Expiration time.Time
}

// Inspect parses the header of token without verifying it.
func Inspect(token string) (Header, error) {
	payload, version, versioned := splitVersion(token)
	if payload == "" {
		return Header{}, ErrEmptySeal
	}

	h := Header{Version: 1}
	if versioned {
		n, err := strconv.Atoi(version)
		if err != nil {
			return Header{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
		}
		h.Version = n
	}

	parts := strings.Split(payload, componentDelimiter)

	var idPart, expPart string
	switch h.Version {
	case MajorVersion:
		if len(parts) != v3Components {
			return Header{}, fmt.Errorf("%w: got %d, want %d", ErrComponentCount, len(parts), v3Components)
		}
		idPart, expPart = parts[v3KeyID], parts[v3Expiration]
	case LegacyMajorVersion, 1:
		if len(parts) != ironComponents {
			return Header{}, fmt.Errorf("%w: got %d, want %d", ErrComponentCount, len(parts), ironComponents)
		}
		idPart, expPart = parts[ironPasswordID], parts[ironExpiration]
	default:
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	id, err := strconv.Atoi(idPart)
	if err != nil {
		return Header{}, fmt.Errorf("%w: key id %q", ErrInvalidFormat, idPart)
	}
	h.KeyID = id

	ms, err := parseExpiration(expPart)
	if err != nil {
		return Header{}, err
	}
	if expPart != "" {
		h.Expiration = time.UnixMilli(ms)
	}

	return h, nil
}
