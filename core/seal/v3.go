package seal

import (
	"crypto/ed25519"
	"crypto/mlkem"
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltSize     = 32
	v3Components = 8

	kemInfo  = "iron-session/v3/kem"
	signInfo = "iron-session/v3/sign"
	aeadInfo = "iron-session/v3/aead"
)

// Component positions in a v3 payload.
const (
	v3KeyID = iota
	v3Salt
	v3Expiration
	v3EncapsulationKey
	v3KEMCiphertext
	v3Ciphertext
	v3Signature
	v3SigningKey
)

// sealV3 builds a current-format payload:
//
//	keyID*salt*expiration*encapsulationKey*kemCiphertext*ciphertext*signature*signingKey
//
// The ML-KEM and Ed25519 key pairs are derived from the password and a fresh
// salt, so they are unique per seal and reproducible only by key holders.
func (s *Sealer) sealV3(plaintext []byte) (string, error) {
	salt, err := randomBytes(saltSize)
	if err != nil {
		return "", err
	}

	var payload string
	err = s.keys.UseCurrent(func(id int, secret []byte) error {
		dk, err := kemKey(secret, salt)
		if err != nil {
			return err
		}
		ek := dk.EncapsulationKey()
		shared, kemCiphertext := ek.Encapsulate()
		defer wipe(shared)

		parts := make([]string, v3Components)
		parts[v3KeyID] = strconv.Itoa(id)
		parts[v3Salt] = encode(salt)
		parts[v3Expiration] = s.expiration()
		parts[v3EncapsulationKey] = encode(ek.Bytes())
		parts[v3KEMCiphertext] = encode(kemCiphertext)

		ciphertext, err := encryptV3(shared, salt, plaintext, []byte(v3Header(parts)))
		if err != nil {
			return err
		}
		parts[v3Ciphertext] = encode(ciphertext)

		signer, err := signingKey(secret, salt)
		if err != nil {
			return err
		}
		parts[v3Signature] = encode(ed25519.Sign(signer, []byte(v3SignedMessage(parts))))
		parts[v3SigningKey] = encode(signer.Public().(ed25519.PublicKey))

		payload = strings.Join(parts, componentDelimiter)
		return nil
	})
	if err != nil {
		return "", err
	}

	return payload, nil
}

// openV3 verifies and decrypts a current-format payload.
func (s *Sealer) openV3(payload string) ([]byte, error) {
	parts := strings.Split(payload, componentDelimiter)
	if len(parts) != v3Components {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrComponentCount, len(parts), v3Components)
	}

	id, err := strconv.Atoi(parts[v3KeyID])
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: key id %q", ErrInvalidFormat, parts[v3KeyID])
	}
	if _, err := parseExpiration(parts[v3Expiration]); err != nil {
		return nil, err
	}

	salt, err := decodeSized(parts[v3Salt], saltSize)
	if err != nil {
		return nil, err
	}
	embeddedEK, err := decodeSized(parts[v3EncapsulationKey], mlkem.EncapsulationKeySize768)
	if err != nil {
		return nil, err
	}
	kemCiphertext, err := decodeSized(parts[v3KEMCiphertext], mlkem.CiphertextSize768)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decode(parts[v3Ciphertext])
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}
	signature, err := decodeSized(parts[v3Signature], ed25519.SignatureSize)
	if err != nil {
		return nil, err
	}
	embeddedPub, err := decodeSized(parts[v3SigningKey], ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}

	var plaintext []byte
	err = s.keys.Use(id, func(secret []byte) error {
		signer, err := signingKey(secret, salt)
		if err != nil {
			return err
		}
		expectedPub := signer.Public().(ed25519.PublicKey)
		if subtle.ConstantTimeCompare(expectedPub, embeddedPub) != 1 {
			return fmt.Errorf("%w: signing key mismatch", ErrBadSignature)
		}
		if !ed25519.Verify(ed25519.PublicKey(embeddedPub), []byte(v3SignedMessage(parts)), signature) {
			return ErrBadSignature
		}

		if err := s.checkExpiration(parts[v3Expiration]); err != nil {
			return err
		}

		dk, err := kemKey(secret, salt)
		if err != nil {
			return err
		}
		if subtle.ConstantTimeCompare(dk.EncapsulationKey().Bytes(), embeddedEK) != 1 {
			return fmt.Errorf("%w: encapsulation key mismatch", ErrBadSignature)
		}
		shared, err := dk.Decapsulate(kemCiphertext)
		if err != nil {
			return fmt.Errorf("%w: decapsulate: %v", ErrInvalidFormat, err)
		}
		defer wipe(shared)

		plaintext, err = decryptV3(shared, salt, ciphertext, []byte(v3Header(parts)))
		return err
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

func encryptV3(shared, salt, plaintext, aad []byte) ([]byte, error) {
	key, err := deriveKey(shared, salt, aeadInfo, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("seal: creating aead: %w", err)
	}

	nonce, err := randomBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

func decryptV3(shared, salt, ciphertext, aad []byte) ([]byte, error) {
	key, err := deriveKey(shared, salt, aeadInfo, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("seal: creating aead: %w", err)
	}

	nonce, sealed := ciphertext[:chacha20poly1305.NonceSizeX], ciphertext[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func kemKey(secret, salt []byte) (*mlkem.DecapsulationKey768, error) {
	seed, err := deriveKey(secret, salt, kemInfo, mlkem.SeedSize)
	if err != nil {
		return nil, err
	}
	defer wipe(seed)

	dk, err := mlkem.NewDecapsulationKey768(seed)
	if err != nil {
		return nil, fmt.Errorf("seal: mlkem key: %w", err)
	}
	return dk, nil
}

func signingKey(secret, salt []byte) (ed25519.PrivateKey, error) {
	seed, err := deriveKey(secret, salt, signInfo, ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	defer wipe(seed)

	return ed25519.NewKeyFromSeed(seed), nil
}

// v3Header is the AEAD additional data: version, key id, salt and expiration.
func v3Header(parts []string) string {
	return strconv.Itoa(MajorVersion) + componentDelimiter +
		strings.Join(parts[v3KeyID:v3EncapsulationKey], componentDelimiter)
}

// v3SignedMessage covers every component except the signature and signing key.
func v3SignedMessage(parts []string) string {
	return strconv.Itoa(MajorVersion) + componentDelimiter +
		strings.Join(parts[v3KeyID:v3Signature], componentDelimiter)
}

func decodeSized(s string, size int) ([]byte, error) {
	b, err := decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: component length %d, want %d", ErrInvalidFormat, len(b), size)
	}
	return b, nil
}
