package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength     = 16
	hashKeyLength  = 32
	hashIterations = 10000
)

// GenerateSalt returns a fresh random per-user salt, hex encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a salted SHA-256 based hash (PBKDF2) of the password
// and returns it hex encoded. The salt is the hex string stored next to the
// hash on the user row.
func HashPassword(password, salt string) (string, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), rawSalt, hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(key), nil
}

// CheckPasswordHash re-hashes the candidate with the stored salt and compares
// in constant time.
func CheckPasswordHash(password, salt, hash string) bool {
	candidate, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
