package keyset

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/awnumar/memguard"
)

// MinPasswordLength is the minimum secret length in bytes.
const MinPasswordLength = 32

// DefaultID is the id a single password is stored under.
const DefaultID = 1

// KeySet is an immutable set of secrets indexed by positive key ids.
// New seals use the highest id; any id in the set may verify.
// Secrets are kept encrypted in memguard enclaves and decrypted only inside Use.
type KeySet struct {
	keys map[int]*memguard.Enclave
	ids  []int
}

// FromPassword stores a single password under DefaultID.
func FromPassword(password string) (*KeySet, error) {
	return New(map[int]string{DefaultID: password})
}

// New builds a KeySet from an id to secret map.
func New(passwords map[int]string) (*KeySet, error) {
	if len(passwords) == 0 {
		return nil, ErrNoPassword
	}

	ids := make([]int, 0, len(passwords))
	for id, secret := range passwords {
		if id <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyID, id)
		}
		if secret == "" {
			return nil, fmt.Errorf("%w: key %d is empty", ErrNoPassword, id)
		}
		if len(secret) < MinPasswordLength {
			return nil, fmt.Errorf("%w: key %d has %d chars, need at least %d",
				ErrPasswordTooShort, id, len(secret), MinPasswordLength)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	keys := make(map[int]*memguard.Enclave, len(ids))
	for _, id := range ids {
		// NewEnclave wipes its source, so hand it a private copy.
		keys[id] = memguard.NewEnclave([]byte(passwords[id]))
	}

	return &KeySet{keys: keys, ids: ids}, nil
}

// Parse accepts either a plain password or a JSON object mapping decimal ids
// to secrets, e.g. {"1":"first-secret...","2":"second-secret..."}.
// This is the form used by environment variables and the CLI.
func Parse(s string) (*KeySet, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrNoPassword
	}
	if !strings.HasPrefix(trimmed, "{") {
		return FromPassword(s)
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("keyset: parse password map: %w", err)
	}

	passwords := make(map[int]string, len(raw))
	for k, secret := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidKeyID, k)
		}
		passwords[id] = secret
	}

	return New(passwords)
}

// CurrentID returns the highest key id, used for every new seal.
func (k *KeySet) CurrentID() int {
	return k.ids[len(k.ids)-1]
}

// IDs returns all key ids in ascending order.
func (k *KeySet) IDs() []int {
	return slices.Clone(k.ids)
}

// Has reports whether id is in the set.
func (k *KeySet) Has(id int) bool {
	_, ok := k.keys[id]
	return ok
}

// Len returns the number of keys.
func (k *KeySet) Len() int {
	return len(k.ids)
}

// Use decrypts the secret for id and passes it to fn.
// The slice is read-only and is destroyed when fn returns; fn must not retain it.
func (k *KeySet) Use(id int, fn func(secret []byte) error) error {
	enclave, ok := k.keys[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKeyID, id)
	}

	buf, err := enclave.Open()
	if err != nil {
		return fmt.Errorf("keyset: open key %d: %w", id, err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// UseCurrent is Use with CurrentID.
func (k *KeySet) UseCurrent(fn func(id int, secret []byte) error) error {
	id := k.CurrentID()
	return k.Use(id, func(secret []byte) error {
		return fn(id, secret)
	})
}
