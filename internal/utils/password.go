package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext secret using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext secret with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckAnyPasswordHash reports whether the plaintext secret matches any
// of the given bcrypt hashes. Used for the closed set of allowed
// usernames, which are stored hashed like the shared password.
func CheckAnyPasswordHash(password string, hashes []string) bool {
	for _, h := range hashes {
		if CheckPasswordHash(password, h) {
			return true
		}
	}
	return false
}
