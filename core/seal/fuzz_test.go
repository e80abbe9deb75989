package seal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/MaximKing1/iron-session/core/keyset"
	"github.com/MaximKing1/iron-session/core/seal"
)

func FuzzUnseal(f *testing.F) {
	keys, err := keyset.FromPassword(strings.Repeat("f", 32))
	if err != nil {
		f.Fatal(err)
	}
	s, err := seal.New(keys)
	if err != nil {
		f.Fatal(err)
	}
	legacy, err := seal.New(keys, seal.WithLegacyFormat())
	if err != nil {
		f.Fatal(err)
	}

	current, _ := s.Seal(map[string]any{"a": 1})
	iron, _ := legacy.Seal(map[string]any{"a": 1})

	f.Add(current)
	f.Add(iron)
	f.Add(strings.TrimSuffix(iron, "~2"))
	f.Add("")
	f.Add("~3")
	f.Add("*******~3")
	f.Add("Fe26.2*1*******~2")

	f.Fuzz(func(t *testing.T, token string) {
		_, err := s.Unseal(token)
		if err != nil && !errors.Is(err, seal.ErrEmptySeal) {
			t.Fatalf("unexpected error for %q: %v", token, err)
		}
		_, _ = seal.Inspect(token)
	})
}
