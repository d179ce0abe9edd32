package utils

import (
	"errors"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	SetSessionSecret([]byte("test-secret"))

	token, err := CreateSessionToken(42)
	if err != nil {
		t.Fatalf("CreateSessionToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("CreateSessionToken() returned empty token")
	}

	userID, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("ValidateSessionToken() userID = %d, want 42", userID)
	}
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	SetSessionSecret([]byte("test-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not a jwt", token: "hello world"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiJ9.broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSessionToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateSessionToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

func TestValidateSessionTokenRejectsWrongKey(t *testing.T) {
	SetSessionSecret([]byte("key-one"))
	token, err := CreateSessionToken(7)
	if err != nil {
		t.Fatalf("CreateSessionToken() error = %v", err)
	}

	SetSessionSecret([]byte("key-two"))
	if _, err := ValidateSessionToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateSessionToken() with wrong key error = %v, want ErrInvalidToken", err)
	}
}
