package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHexString returns nBytes of cryptographically secure randomness
// encoded as a hex string of 2*nBytes characters.
func RandomHexString(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("nBytes must be positive, got %d", nBytes)
	}
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
