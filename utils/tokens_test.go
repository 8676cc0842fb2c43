package utils

import (
	"testing"
	"time"
)

func TestNewManagerEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestNewJWTParseRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.NewJWT(42, "provider", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	userID, role, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
	if role != "provider" {
		t.Errorf("expected role provider, got %q", role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT(1, "client", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	if _, _, err := m2.Parse(token); err == nil {
		t.Fatal("expected parse error for token signed with another key")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	token, err := m.NewJWT(1, "client", -time.Minute)
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	if _, _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse error for expired token")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	first, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}

	second, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct refresh tokens")
	}
}
