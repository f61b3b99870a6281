// Package credentials hashes and verifies passwords. Only bcrypt digests are
// ever stored; the plaintext does not leave the function that received it.
package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyDigest is a valid bcrypt digest of an unguessable random string. Login
// compares against it when the account does not exist, so the response takes
// as long as a real comparison.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// A malformed digest verifies as false rather than failing.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
