package security

import (
	"regexp"
	"testing"
	"time"
)

func newTestService() *TokenService {
	return NewTokenService("test-secret", 15*time.Minute, 30*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestService()

	tok, err := s.IssueAccessToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	claims, err := s.Verify(tok, TokenAccess)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	if claims.Subject != "user-123" {
		t.Errorf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}

	if claims.Email != "alice@example.com" {
		t.Errorf("email mismatch: got %q want %q", claims.Email, "alice@example.com")
	}
}

func TestVerifyRejectsWrongKind(t *testing.T) {
	t.Parallel()

	s := newTestService()

	access, err := s.IssueAccessToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	refresh, err := s.IssueRefreshToken("user-123")
	if err != nil {
		t.Fatalf("IssueRefreshToken error: %v", err)
	}

	if _, err := s.Verify(access, TokenRefresh); err != ErrInvalidToken {
		t.Errorf("access token accepted as refresh, err = %v", err)
	}

	if _, err := s.Verify(refresh, TokenAccess); err != ErrInvalidToken {
		t.Errorf("refresh token accepted as access, err = %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	s := NewTokenService("test-secret", -time.Second, -time.Second)

	tok, err := s.IssueAccessToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	if _, err := s.Verify(tok, TokenAccess); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestService().IssueAccessToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	other := NewTokenService("other-secret", 15*time.Minute, time.Hour)

	if _, err := other.Verify(tok, TokenAccess); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	s := newTestService()

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := s.Verify(tok, TokenAccess); err != ErrInvalidToken {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestGenerateOpaqueToken(t *testing.T) {
	t.Parallel()

	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := make(map[string]bool)

	for range 16 {
		tok, err := GenerateOpaqueToken()
		if err != nil {
			t.Fatalf("GenerateOpaqueToken error: %v", err)
		}

		if !hexRe.MatchString(tok) {
			t.Fatalf("token %q is not 64 hex chars", tok)
		}

		if seen[tok] {
			t.Fatalf("duplicate opaque token generated")
		}
		seen[tok] = true
	}
}

func TestTokenHashMatches(t *testing.T) {
	t.Parallel()

	hash := HashToken("some-refresh-token")

	if !TokenHashMatches("some-refresh-token", hash) {
		t.Error("digest of the same token should match")
	}

	if TokenHashMatches("other-token", hash) {
		t.Error("digest of a different token should not match")
	}

	if hash == "some-refresh-token" {
		t.Error("digest must not equal the token")
	}
}
