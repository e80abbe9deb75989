package seal

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Iron Fe26.2 parameters: PBKDF2-SHA1 with one iteration over hex salts,
// AES-256-CBC for confidentiality and HMAC-SHA256 for integrity.
const (
	ironPrefix     = "Fe26.2"
	ironSaltBytes  = 32
	ironKeySize    = 32
	ironIterations = 1
	ironComponents = 8
)

// Component positions in an iron seal.
const (
	ironMacPrefix = iota
	ironPasswordID
	ironEncryptionSalt
	ironIV
	ironEncrypted
	ironExpiration
	ironHMACSalt
	ironHMAC
)

// sealIron produces an iron seal:
//
//	Fe26.2*id*encryptionSalt*iv*encrypted*expiration*hmacSalt*hmac
func (s *Sealer) sealIron(plaintext []byte) (string, error) {
	var sealed string
	err := s.keys.UseCurrent(func(id int, secret []byte) error {
		encSalt, err := ironSalt()
		if err != nil {
			return err
		}
		iv, err := randomBytes(aes.BlockSize)
		if err != nil {
			return err
		}

		encrypted, err := ironEncrypt(ironKey(secret, encSalt), iv, plaintext)
		if err != nil {
			return err
		}

		base := strings.Join([]string{
			ironPrefix,
			strconv.Itoa(id),
			encSalt,
			encode(iv),
			encode(encrypted),
			s.expiration(),
		}, componentDelimiter)

		hmacSalt, err := ironSalt()
		if err != nil {
			return err
		}

		sealed = base + componentDelimiter + hmacSalt + componentDelimiter + ironMAC(secret, hmacSalt, base)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sealed, nil
}

// openIron verifies and decrypts an iron seal. The MAC is checked before any
// decryption, so padding failures are never reachable with forged input.
func (s *Sealer) openIron(sealed string) ([]byte, error) {
	parts := strings.Split(sealed, componentDelimiter)
	if len(parts) != ironComponents {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrComponentCount, len(parts), ironComponents)
	}
	if parts[ironMacPrefix] != ironPrefix {
		return nil, fmt.Errorf("%w: wrong mac prefix", ErrInvalidFormat)
	}

	id, err := strconv.Atoi(parts[ironPasswordID])
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, parts[ironPasswordID])
	}
	if _, err := parseExpiration(parts[ironExpiration]); err != nil {
		return nil, err
	}

	var plaintext []byte
	err = s.keys.Use(id, func(secret []byte) error {
		base := strings.Join(parts[:ironHMACSalt], componentDelimiter)
		expected := ironMAC(secret, parts[ironHMACSalt], base)
		if !hmac.Equal([]byte(expected), []byte(parts[ironHMAC])) {
			return fmt.Errorf("%w: bad hmac value", ErrBadSignature)
		}

		if err := s.checkExpiration(parts[ironExpiration]); err != nil {
			return err
		}

		iv, err := decodeSized(parts[ironIV], aes.BlockSize)
		if err != nil {
			return err
		}
		encrypted, err := decode(parts[ironEncrypted])
		if err != nil {
			return err
		}

		plaintext, err = ironDecrypt(ironKey(secret, parts[ironEncryptionSalt]), iv, encrypted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

func ironSalt() (string, error) {
	b, err := randomBytes(ironSaltBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ironKey derives a key from the password and the textual (hex) salt.
func ironKey(secret []byte, salt string) []byte {
	return pbkdf2.Key(secret, []byte(salt), ironIterations, ironKeySize, sha1.New)
}

func ironMAC(secret []byte, salt, base string) string {
	key := ironKey(secret, salt)
	defer wipe(key)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(base))
	return encode(mac.Sum(nil))
}

func ironEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: creating cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func ironDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	defer wipe(key)

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrInvalidFormat)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: creating cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	plaintext, ok := pkcs7Unpad(out, aes.BlockSize)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, bool) {
	if len(b) == 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, false
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}
