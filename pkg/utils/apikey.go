package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const apiKeyRandomBytes = 24

// GenerateApiKey returns a fresh shop API key: "sk_" followed by 48 hex
// characters from 24 random bytes.
func GenerateApiKey() (string, error) {
	buf := make([]byte, apiKeyRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return "sk_" + hex.EncodeToString(buf), nil
}
