package sessiontransport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximKing1/iron-session/core/cookie"
	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/seal"
	"github.com/MaximKing1/iron-session/core/session"
	"github.com/MaximKing1/iron-session/core/sessiontransport"
)

func testConfig(t *testing.T) session.Config {
	t.Helper()
	keys, err := keyset.FromPassword(strings.Repeat("t", 32))
	require.NoError(t, err)
	cfg, err := session.Resolve("sid", keys, session.WithTTL(time.Hour))
	require.NoError(t, err)
	return cfg
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	t.Run("reads request cookies", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "theme=dark; sid=value~3")

		tr := sessiontransport.FromHTTP(httptest.NewRecorder(), r)
		v, ok := tr.ReadCookie("sid")
		assert.True(t, ok)
		assert.Equal(t, "value~3", v)

		_, ok = tr.ReadCookie("other")
		assert.False(t, ok)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		_, ok := sessiontransport.FromHTTP(httptest.NewRecorder(), nil).ReadCookie("sid")
		assert.False(t, ok)
	})

	t.Run("appends to existing Set-Cookie headers", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		rec.Header().Set("Set-Cookie", "theme=dark")

		tr := sessiontransport.FromHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, tr.WriteCookie("sid", "v1", cookie.Options{Path: "/"}))
		require.NoError(t, tr.WriteCookie("other", "v2", cookie.Options{Path: "/"}))

		assert.Equal(t, []string{"theme=dark", "sid=v1; Path=/", "other=v2; Path=/"}, rec.Header().Values("Set-Cookie"))
	})

	t.Run("headers sent", func(t *testing.T) {
		t.Parallel()
		w := sessiontransport.TrackWrites(httptest.NewRecorder())
		tr := sessiontransport.FromHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, tr.WriteCookie("sid", "before", cookie.Options{}))

		_, err := w.Write([]byte("body"))
		require.NoError(t, err)

		err = tr.WriteCookie("sid", "after", cookie.Options{})
		assert.ErrorIs(t, err, session.ErrHeadersSent)
	})

	t.Run("invalid cookie", func(t *testing.T) {
		t.Parallel()
		tr := sessiontransport.FromHTTP(httptest.NewRecorder(), nil)
		err := tr.WriteCookie("bad name", "v", cookie.Options{})
		assert.ErrorIs(t, err, cookie.ErrInvalidCookie)
	})
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	req := http.Header{}
	req.Set("Cookie", "sid=abc")
	resp := http.Header{}

	tr := sessiontransport.FromHeaders(req, resp)
	v, ok := tr.ReadCookie("sid")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, tr.WriteCookie("sid", "xyz", cookie.Options{Path: "/", HttpOnly: true}))
	assert.Equal(t, []string{"sid=xyz; Path=/; HttpOnly"}, resp.Values("Set-Cookie"))

	readOnly := sessiontransport.FromHeaders(req, nil)
	assert.ErrorIs(t, readOnly.WriteCookie("sid", "v", cookie.Options{}), sessiontransport.ErrReadOnly)

	_, ok = sessiontransport.FromHeaders(nil, nil).ReadCookie("sid")
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := sessiontransport.NewMemoryStore()

	_, ok := store.Get("sid")
	assert.False(t, ok)

	opts := cookie.Apply(cookie.Options{Path: "/"}, cookie.WithMaxAge(60))
	require.NoError(t, store.Set("sid", "v1", opts))

	v, ok := store.Get("sid")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	c, ok := store.Cookie("sid")
	require.True(t, ok)
	assert.Equal(t, "sid=v1; Path=/; Max-Age=60", c.Header)
	assert.Equal(t, 60, *c.Options.MaxAge)

	*opts.MaxAge = 1
	c, _ = store.Cookie("sid")
	assert.Equal(t, 60, *c.Options.MaxAge, "stored options are copied")

	require.NoError(t, store.Set("sid", "", cookie.Expired(opts)))
	_, ok = store.Get("sid")
	assert.False(t, ok, "max-age 0 deletes the cookie")
	assert.Zero(t, store.Len())

	require.NoError(t, store.Set("old", "v", cookie.Options{Expires: time.Now().Add(-time.Hour)}))
	_, ok = store.Get("old")
	assert.False(t, ok, "expired cookies are not returned")

	err := store.Set("sid", "v", cookie.Options{SameSite: http.SameSiteNoneMode})
	assert.ErrorIs(t, err, cookie.ErrSameSiteNoneInsecure)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := sessiontransport.NewMemoryStore()
	done := make(chan struct{})

	for i := range 10 {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = store.Set("sid", strings.Repeat("a", i+1), cookie.Options{})
				_, _ = store.Get("sid")
			}
		}()
	}
	for range 10 {
		<-done
	}

	assert.Equal(t, 1, store.Len())
}

// Every transport must produce the same cookie for the same session.
func TestTransports_SameSealingBehavior(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := testConfig(t)

	rec := httptest.NewRecorder()
	httpT := sessiontransport.FromHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	respHeaders := http.Header{}
	headerT := sessiontransport.FromHeaders(http.Header{}, respHeaders)

	store := sessiontransport.NewMemoryStore()
	storeT := sessiontransport.FromStore(store)

	var tokens []string
	var headers []string
	for _, tr := range []session.Transport{httpT, headerT, storeT} {
		sess, err := session.Load(ctx, tr, cfg)
		require.NoError(t, err)
		sess.Set("userId", 42)
		require.NoError(t, sess.Save(ctx))
	}

	for _, h := range [][]string{rec.Header().Values("Set-Cookie"), respHeaders.Values("Set-Cookie")} {
		require.Len(t, h, 1)
		c, err := http.ParseSetCookie(h[0])
		require.NoError(t, err)
		tokens = append(tokens, c.Value)
		headers = append(headers, strings.TrimPrefix(h[0], "sid="+c.Value))
	}
	stored, ok := store.Cookie("sid")
	require.True(t, ok)
	tokens = append(tokens, stored.Value)
	headers = append(headers, strings.TrimPrefix(stored.Header, "sid="+stored.Value))

	for i := 1; i < len(headers); i++ {
		assert.Equal(t, headers[0], headers[i], "cookie attributes must match")
	}
	assert.Equal(t, "; Path=/; Max-Age=3540; HttpOnly; Secure; SameSite=Lax", headers[0])

	// Seals are randomized, so compare what they decode to and their headers.
	for _, token := range tokens {
		h, err := seal.Inspect(token)
		require.NoError(t, err)
		assert.Equal(t, seal.MajorVersion, h.Version)
		assert.Equal(t, cfg.Keys.CurrentID(), h.KeyID)

		v, err := seal.Unseal(token, cfg.Keys, cfg.TTL)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"userId": float64(42)}, v)
	}

	// A seal written by one transport reads back through another.
	reader := sessiontransport.FromHeaders(http.Header{"Cookie": {"sid=" + tokens[0]}}, nil)
	sess, err := session.Load(ctx, reader, cfg)
	require.NoError(t, err)
	assert.False(t, sess.IsNew())

	sess, err = session.Load(ctx, storeT, cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 42, must(sess.Get("userId")))
}

func must(v any, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func TestTrackWrites(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := sessiontransport.TrackWrites(rec)

	tracked, ok := w.(*sessiontransport.ResponseWriter)
	require.True(t, ok)
	assert.False(t, tracked.Written())
	assert.Zero(t, tracked.Status())

	assert.Same(t, w, sessiontransport.TrackWrites(w), "already tracked writers are not rewrapped")

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	assert.True(t, tracked.Written())
	assert.Equal(t, http.StatusAccepted, tracked.Status())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Same(t, rec, tracked.Unwrap())

	flushed := sessiontransport.TrackWrites(httptest.NewRecorder()).(*sessiontransport.ResponseWriter)
	flushed.Flush()
	assert.True(t, flushed.Written())
}

func TestNilTargets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := testConfig(t)

	tests := []struct {
		name      string
		transport session.Transport
	}{
		{"store without backing store", sessiontransport.FromStore(nil)},
		{"http without response writer", sessiontransport.FromHTTP(nil, httptest.NewRequest(http.MethodGet, "/", nil))},
		{"http without request or writer", sessiontransport.FromHTTP(nil, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess, err := session.Load(ctx, tt.transport, cfg)
			require.NoError(t, err)
			assert.True(t, sess.IsNew())

			sess.Set("userId", 42)
			assert.ErrorIs(t, sess.Save(ctx), session.ErrMissingTransport)
			assert.ErrorIs(t, sess.Destroy(ctx), session.ErrMissingTransport)
		})
	}
}
