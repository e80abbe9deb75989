// Package keyset resolves session passwords into a rotation-aware set of keys.
//
// A single password is stored under id 1. A rotation map assigns each secret a
// positive id; new seals always use the highest id while verification accepts
// any id still present:
//
//	keys, err := keyset.New(map[int]string{
//		1: os.Getenv("SESSION_PASSWORD_OLD"),
//		2: os.Getenv("SESSION_PASSWORD_NEW"), // current
//	})
//
// Rotation is publish-then-retire: add a new highest id, keep older ids until
// every cookie sealed with them has expired, then remove them.
//
// Every secret must be at least 32 bytes. Secrets live in memguard enclaves
// and are only decrypted for the duration of a Use callback.
package keyset
