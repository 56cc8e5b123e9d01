package auth_test

import (
	"testing"

	"github.com/arstudios/intake-api/internal/auth"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("admin1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin1234" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword("admin1234", hash) {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword("admin12345", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPasswordBadHash(t *testing.T) {
	if auth.CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash accepted")
	}
}
