package mem

import (
	"testing"
	"time"
)

func TestResetTokensConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok-1", "parent@example.com", time.Minute)

	if got := store.Consume("tok-1"); got != "parent@example.com" {
		t.Fatalf("Consume() = %q, want %q", got, "parent@example.com")
	}
	if got := store.Consume("tok-1"); got != "" {
		t.Errorf("second Consume() = %q, want empty", got)
	}
}

func TestResetTokensExpiry(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok-2", "parent@example.com", -time.Second)

	if _, ok := store.Peek("tok-2"); ok {
		t.Error("Peek() returned an expired token")
	}
	if got := store.Consume("tok-2"); got != "" {
		t.Errorf("Consume() expired token = %q, want empty", got)
	}
}

func TestResetTokensPeekDoesNotConsume(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok-3", "parent@example.com", time.Minute)

	if email, ok := store.Peek("tok-3"); !ok || email != "parent@example.com" {
		t.Fatalf("Peek() = %q, %v", email, ok)
	}
	if got := store.Consume("tok-3"); got != "parent@example.com" {
		t.Errorf("Consume() after Peek() = %q, want %q", got, "parent@example.com")
	}
}

func TestResetTokensUnknownToken(t *testing.T) {
	store := NewResetTokens()

	if got := store.Consume("never-issued"); got != "" {
		t.Errorf("Consume() unknown token = %q, want empty", got)
	}
	if _, ok := store.Peek("never-issued"); ok {
		t.Error("Peek() unknown token reported ok")
	}
}
