package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errors.New("password cannot be empty")
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// PasswordVerifier checks submitted passwords against stored credentials.
//
// AllowLegacyPlaintext keeps accounts created before the bcrypt migration
// working: when the bcrypt check fails, the stored value is compared to the
// plain password byte-for-byte. Turn the flag off once cmd/hashpasswords has
// been run everywhere and the bridge is no longer needed.
type PasswordVerifier struct {
	AllowLegacyPlaintext bool
}

// NewPasswordVerifier creates a verifier with the legacy fallback enabled.
func NewPasswordVerifier() *PasswordVerifier {
	return &PasswordVerifier{AllowLegacyPlaintext: true}
}

// Verify reports whether plain matches stored. A malformed stored hash is
// treated as a mismatch, never an error.
func (v *PasswordVerifier) Verify(plain, stored string) bool {
	if plain == "" || stored == "" {
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)); err == nil {
		return true
	}

	// Not-yet-migrated accounts still hold the raw password.
	if v.AllowLegacyPlaintext && stored == plain {
		return true
	}

	return false
}
