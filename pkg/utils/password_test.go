package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	h := HashPassword("hunter2")
	if h == "" || h == "hunter2" {
		t.Fatalf("hash must be non-empty and never the plaintext, got %q", h)
	}
	if !CheckPassword("hunter2", h) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	if HashPassword("same") == HashPassword("same") {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}
