package security

import (
	"strings"
	"testing"

	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("Secret123!", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := VerifyPassword("Secret123!", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, err := HashPassword("", config.PasswordConfig{}); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, err := HashPassword("same", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("same", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}
