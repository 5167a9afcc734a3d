package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns a fixed-length hex digest of a caller ID, safe to use
// in storage keys regardless of what the caller sent.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
