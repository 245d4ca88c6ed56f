package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	j := &JWTer{Secret: []byte("super-secret"), Issuer: "repair-tracker", TTL: time.Hour}

	tok, err := j.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UID != 42 {
		t.Fatalf("uid mismatch: got %d want 42", claims.UID)
	}
}

func TestIssue_NoTTL_TokenNeverExpires(t *testing.T) {
	t.Parallel()

	j := &JWTer{Secret: []byte("s"), Issuer: "repair-tracker"}

	tok, err := j.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry, got %v", claims.ExpiresAt)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := &JWTer{Secret: []byte("right-secret"), Issuer: "repair-tracker"}
	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := &JWTer{Secret: []byte("wrong-secret"), Issuer: "repair-tracker"}
	if _, err := verifier.Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	t.Parallel()

	a := &JWTer{Secret: []byte("s"), Issuer: "someone-else"}
	tok, err := a.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	b := &JWTer{Secret: []byte("s"), Issuer: "repair-tracker"}
	if _, err := b.Parse(tok); err == nil {
		t.Fatalf("expected error for wrong issuer, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	j := &JWTer{Secret: []byte("k"), Issuer: "repair-tracker"}
	if _, err := j.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
