package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err != ErrEmptyPassword {
		t.Errorf("err = %v, want ErrEmptyPassword", err)
	}
}

func TestVerifyBcrypt(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := NewPasswordVerifier()
	if !v.Verify("s3cret", string(hashed)) {
		t.Error("correct password rejected")
	}
	if v.Verify("wrong", string(hashed)) {
		t.Error("wrong password accepted")
	}
	if v.Verify("", string(hashed)) {
		t.Error("empty password accepted")
	}
	if v.Verify("s3cret", "") {
		t.Error("empty stored credential accepted")
	}
}

func TestVerifyMalformedStoredIsMismatch(t *testing.T) {
	v := &PasswordVerifier{}
	if v.Verify("s3cret", "$2a$totally-not-a-hash") {
		t.Error("malformed hash accepted")
	}
}

func TestVerifyLegacyPlaintext(t *testing.T) {
	enabled := NewPasswordVerifier()
	if !enabled.Verify("s3cret", "s3cret") {
		t.Error("plaintext match rejected with fallback on")
	}
	if enabled.Verify("s3cret", "other") {
		t.Error("plaintext mismatch accepted")
	}

	disabled := &PasswordVerifier{AllowLegacyPlaintext: false}
	if disabled.Verify("s3cret", "s3cret") {
		t.Error("plaintext match accepted with fallback off")
	}
}
