package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximKing1/iron-session/core/config"
	"github.com/MaximKing1/iron-session/core/seal"
)

const testPassword = "an-operator-password-of-32+chars"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestKeygen(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "keygen")
	require.NoError(t, err)
	b, err := base64.RawURLEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.Len(t, b, 32)

	out, err = run(t, "", "keygen", "--bytes", "48")
	require.NoError(t, err)
	assert.Len(t, out, 64)

	_, err = run(t, "", "keygen", "--bytes", "8")
	assert.Error(t, err)
}

func TestSealUnseal(t *testing.T) {
	t.Parallel()

	token, err := run(t, "", "seal", "--password", testPassword, `{"userId":42}`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(token, "~3"))

	out, err := run(t, "", "unseal", "--password", testPassword, token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":42}`, out)
}

func TestSealUnseal_Stdin(t *testing.T) {
	t.Parallel()

	token, err := run(t, `{"a":[1,2]}`+"\n", "seal", "--password", testPassword, "-")
	require.NoError(t, err)

	out, err := run(t, token+"\n", "unseal", "--password", testPassword)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, out)
}

func TestSeal_Legacy(t *testing.T) {
	t.Parallel()

	token, err := run(t, "", "seal", "--legacy", "--password", testPassword, `"hello"`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "Fe26.2*"))
	assert.True(t, strings.HasSuffix(token, "~2"))

	out, err := run(t, "", "unseal", "--password", testPassword, token)
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, out)
}

func TestSeal_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "seal", "--password", testPassword, `{not json`)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = run(t, "", "seal", "--password", testPassword)
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = run(t, "", "seal", "--password", "short", `{}`)
	assert.Error(t, err)
}

func TestUnseal_Rejected(t *testing.T) {
	t.Parallel()

	token, err := run(t, "", "seal", "--password", testPassword, `{}`)
	require.NoError(t, err)

	_, err = run(t, "", "unseal", "--password", "another-operator-password-32+chars", token)
	require.Error(t, err)
	assert.True(t, seal.IsInvalid(err))
	assert.Contains(t, err.Error(), "seal rejected")

	_, err = run(t, "", "unseal", "--password", testPassword, "~3")
	assert.ErrorIs(t, err, seal.ErrEmptySeal)
}

func TestRotation(t *testing.T) {
	t.Parallel()

	old, err := json.Marshal(map[string]string{"1": testPassword})
	require.NoError(t, err)
	rotated, err := json.Marshal(map[string]string{
		"1": testPassword,
		"2": "a-newer-operator-password-32+chars",
	})
	require.NoError(t, err)

	token, err := run(t, "", "seal", "--password", string(old), `{"v":1}`)
	require.NoError(t, err)

	out, err := run(t, "", "unseal", "--password", string(rotated), token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, out)

	token, err = run(t, "", "seal", "--password", string(rotated), `{"v":2}`)
	require.NoError(t, err)

	out, err = run(t, "", "inspect", token)
	require.NoError(t, err)
	var h inspectOutput
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	assert.Equal(t, 3, h.Version)
	assert.Equal(t, 2, h.KeyID)
	assert.Empty(t, h.Expiration)
}

func TestInspect_Expiration(t *testing.T) {
	t.Parallel()

	token, err := run(t, "", "seal", "--ttl", "1h", "--password", testPassword, `{}`)
	require.NoError(t, err)

	out, err := run(t, "", "inspect", token)
	require.NoError(t, err)
	var h inspectOutput
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	assert.NotEmpty(t, h.Expiration)
}

func TestPasswordFromEnv(t *testing.T) {
	t.Setenv("IRON_SESSION_PASSWORD", testPassword)
	config.Reset()
	t.Cleanup(config.Reset)

	token, err := run(t, "", "seal", `{"env":true}`)
	require.NoError(t, err)

	out, err := run(t, "", "unseal", "--password", testPassword, token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"env":true}`, out)
}
