package security

import (
	"strings"
	"testing"
)

// Cost 4 keeps the tests fast, the scheme is identical
func newTestHasher() *PasswordHasher {
	return &PasswordHasher{Cost: 4}
}

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := newTestHasher()

	hash, err := h.GenerateFromPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}

	if hash == "Passw0rd!" {
		t.Fatal("hash must never equal the plaintext")
	}

	ok, err := h.VerifyPasswd("Passw0rd!", hash)
	if err != nil {
		t.Fatalf("VerifyPasswd error: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = h.VerifyPasswd("WrongPass1", hash)
	if err != nil {
		t.Fatalf("VerifyPasswd error: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}
}

func TestHashLongPassword(t *testing.T) {
	t.Parallel()

	h := newTestHasher()

	long := strings.Repeat("Aa1", 40) // 120 chars, past bcrypt's 72 byte window

	hash, err := h.GenerateFromPassword(long)
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}

	ok, err := h.VerifyPasswd(long, hash)
	if err != nil {
		t.Fatalf("VerifyPasswd error: %v", err)
	}
	if !ok {
		t.Error("long password should verify against its own hash")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := newTestHasher()

	if _, err := h.VerifyPasswd("Passw0rd!", "not-a-bcrypt-hash"); err == nil {
		t.Error("expected an error for a malformed stored hash")
	}
}
