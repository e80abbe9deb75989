// Package seal turns arbitrary values into opaque, authenticated-encrypted
// tokens and back.
//
// A seal has the form <payload>~<major-version>. The current format (version
// 3) derives, from the password and a fresh random salt, an ML-KEM-768 key pair
// and an Ed25519 signing key pair. The payload carries:
//
//	keyID*salt*expiration*encapsulationKey*kemCiphertext*ciphertext*signature*signingKey
//
// The value is encrypted with XChaCha20-Poly1305 under a key derived from the
// encapsulated shared secret; the signature covers every preceding component.
// Unsealing re-derives both key pairs from the password, so only holders of a
// password in the key set can read or forge seals.
//
// Version 2 is the iron Fe26.2 format (PBKDF2, AES-256-CBC, HMAC-SHA256) and
// is accepted for unsealing; WithLegacyFormat emits it. Tokens without a version
// suffix are pre-versioned iron seals whose fields live under "persistent".
//
// Basic usage:
//
//	keys, _ := keyset.FromPassword(os.Getenv("SESSION_PASSWORD"))
//	s, _ := seal.New(keys, seal.WithTTL(time.Hour))
//
//	token, err := s.Seal(map[string]any{"userId": 42})
//
//	v, err := s.Unseal(token) // map[string]any{"userId": 42.0}
//
// Unseal fails closed: a tampered, expired, foreign or incompatible token
// yields a nil value and a nil error. Open returns the underlying reason, and
// IsInvalid classifies it.
package seal
