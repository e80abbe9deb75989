package sessiontransport

import (
	"sync"
	"time"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/session"
)

// CookieStore is a get/set cookie abstraction, as found in server-side
// rendering frameworks where headers are not directly addressable.
type CookieStore interface {
	Get(name string) (string, bool)
	Set(name, value string, opts cookie.Options) error
}

// Store adapts a CookieStore to session.Transport.
type Store struct {
	store CookieStore
}

var _ session.Transport = (*Store)(nil)

// FromStore creates a transport over store. With a nil store every read
// reports no cookie and every write fails with session.ErrMissingTransport.
func FromStore(store CookieStore) *Store {
	return &Store{store: store}
}

// ReadCookie implements session.Transport.
func (t *Store) ReadCookie(name string) (string, bool) {
	if t == nil || t.store == nil {
		return "", false
	}
	return t.store.Get(name)
}

// WriteCookie implements session.Transport.
func (t *Store) WriteCookie(name, value string, opts cookie.Options) error {
	if t == nil || t.store == nil {
		return session.ErrMissingTransport
	}
	return t.store.Set(name, value, opts)
}

// StoredCookie is a cookie held by a MemoryStore.
type StoredCookie struct {
	Value   string
	Options cookie.Options
	// Header is the serialized Set-Cookie value.
	Header string
}

// MemoryStore is an in-memory CookieStore. Deleted cookies (Max-Age <= 0) are
// dropped. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	cookies map[string]StoredCookie
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cookies: make(map[string]StoredCookie),
		now:     time.Now,
	}
}

// Get implements CookieStore.
func (m *MemoryStore) Get(name string) (string, bool) {
	c, ok := m.Cookie(name)
	if !ok {
		return "", false
	}
	return c.Value, true
}

// Set implements CookieStore. It applies the same validation as an HTTP response.
func (m *MemoryStore) Set(name, value string, opts cookie.Options) error {
	header, err := cookie.Serialize(name, value, opts)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if opts.MaxAge != nil && *opts.MaxAge <= 0 {
		delete(m.cookies, name)
		return nil
	}
	m.cookies[name] = StoredCookie{Value: value, Options: opts.Clone(), Header: header}
	return nil
}

// Cookie returns the stored cookie with its attributes.
// Cookies whose Expires attribute has passed are reported as missing.
func (m *MemoryStore) Cookie(name string) (StoredCookie, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cookies[name]
	if !ok {
		return StoredCookie{}, false
	}
	if !c.Options.Expires.IsZero() && !c.Options.Expires.After(m.now()) {
		return StoredCookie{}, false
	}
	return c, true
}

// Len returns the number of live cookies.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cookies)
}
