package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximKing1/iron-session/core/server"
)

func hello() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "hello")
	})
}

func waitRunning(t *testing.T, s *server.Server) string {
	t.Helper()
	require.Eventually(t, s.Running, 2*time.Second, 10*time.Millisecond)
	return "http://" + s.Addr()
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()

	s := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, hello())() }()

	url := waitRunning(t, s)
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.False(t, s.Running())
}

func TestServer_AlreadyRunning(t *testing.T) {
	t.Parallel()

	s := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = s.Start(ctx, hello()) }()
	waitRunning(t, s)

	err := s.Start(ctx, hello())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop(), "stopping twice is a no-op")
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := server.New(ln.Addr().String())
	err = s.Run(context.Background(), hello())()
	assert.ErrorIs(t, err, server.ErrListen)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	_, err := server.NewFromConfig(server.Config{})
	assert.ErrorIs(t, err, server.ErrMissingAddress)

	s, err := server.NewFromConfig(server.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Addr())
	assert.False(t, s.Running())
}

func TestDefaultConfig_MatchesEnvDefaults(t *testing.T) {
	t.Parallel()

	var cfg server.Config
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	assert.Equal(t, server.DefaultConfig(), cfg)
}
