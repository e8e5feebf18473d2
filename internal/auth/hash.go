// Package auth implements salted password hashing for account credentials.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen = 16
	keyLen  = 32

	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// GenerateSalt returns a fresh random salt as a hex string.
func GenerateSalt() (string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// HashPassword derives a hex-encoded scrypt key from the password and salt.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches the stored salt and hash.
func VerifyPassword(password, salt, hashed string) bool {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(hashed)) == 1
}
