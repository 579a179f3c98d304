package lib

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost mirrors the cost the seed data was hashed with.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext password.
// Each call salts freshly, so hashing the same password twice yields
// different digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the digest.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
