package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// ==================== VERIFICATION TOKEN ====================

// GenerateVerificationToken returns a random opaque token for email
// verification links (32 bytes, hex encoded).
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ==================== RESET PIN ====================

// GeneratePin returns a numeric pin of the given length. Uses crypto/rand
// so pins are not guessable from issue time.
func GeneratePin(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	pin := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate pin: %w", err)
		}
		pin += n.String()
	}

	return pin, nil
}
