package security_test

import (
	"testing"

	"github.com/Rrens/autocatalog/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "Str0ng@Pass"

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == password {
		t.Error("hash equals the plaintext password")
	}

	if !security.CheckPassword(hash, password) {
		t.Error("correct password rejected")
	}

	if security.CheckPassword(hash, "Wr0ng@Pass") {
		t.Error("wrong password accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng@Pass", false},
		{"all special chars accepted", "Aa1@$!%*?&", false},
		{"too short", "S0@a", true},
		{"no uppercase", "str0ng@pass", true},
		{"no lowercase", "STR0NG@PASS", true},
		{"no digit", "Strong@Pass", true},
		{"no special char", "Str0ngPass", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := security.ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
