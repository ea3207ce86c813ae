// Package keys derives fixed-size cache keys from raw text.
package keys

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a derived key in bytes.
const Size = sha256.Size

// Key is the content hash of an input text, used as the cache key.
type Key [Size]byte

// Derive maps text to its cache key: the SHA-256 digest of the UTF-8 bytes.
// Derivation is deterministic and carries no model information, so a cache
// keyed this way must be scoped to a single embedding model. The empty
// string is a valid input with its own digest.
func Derive(text string) Key {
	return sha256.Sum256([]byte(text))
}

// String returns the key as lowercase hex.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
