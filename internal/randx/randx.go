// Package randx provides helpers for generating random secrets and
// wiping sensitive byte slices after use.
package randx

import (
	"crypto/rand"
	"encoding/hex"
)

// HexString returns a random hexadecimal string built from size random
// bytes, so the result is 2*size characters long.
func HexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Wipe overwrites b with zeros. Use it to drop passwords and keys from
// memory once they are no longer needed. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
