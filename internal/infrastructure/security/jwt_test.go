package security

import (
	"testing"
	"time"

	"github.com/studysphere/server/internal/domain"
)

func TestIssueThenVerify_RoundTripsClaims(t *testing.T) {
	s := NewJWTSigner("test-secret", time.Hour)

	tok, err := s.Issue(Claims{"email": "a@x.com", "name": "Ada"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email() != "a@x.com" {
		t.Fatalf("email claim = %q, want a@x.com", claims.Email())
	}
	if claims["name"] != "Ada" {
		t.Fatalf("name claim = %v, want Ada", claims["name"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim to be embedded")
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	s := NewJWTSigner("test-secret", -time.Minute)

	tok, err := s.Issue(Claims{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = s.Verify(tok)
	if !domain.Is(err, "token_expired") {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTSigner("secret-a", time.Hour)
	verifier := NewJWTSigner("secret-b", time.Hour)

	tok, err := issuer.Issue(Claims{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	s := NewJWTSigner("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := s.Verify(tok); !domain.Is(err, "token_invalid") {
			t.Fatalf("token %q: expected token_invalid, got %v", tok, err)
		}
	}
}

func TestClaims_EmailMissing(t *testing.T) {
	if got := (Claims{}).Email(); got != "" {
		t.Fatalf("empty claims email = %q, want empty", got)
	}
	if got := (Claims{"email": 42}).Email(); got != "" {
		t.Fatalf("non-string email = %q, want empty", got)
	}
}
