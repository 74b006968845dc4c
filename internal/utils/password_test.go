package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	const cost = 4 // minimum cost keeps the test fast
	hash, err := HashPassword("hunter22", cost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}
