package utils

import (
	"testing"
	"time"

	"turakBack/internal/models"
)

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT(42, models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	userID, role, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != 42 || role != models.RoleAdmin {
		t.Fatalf("parsed (%d, %q), want (42, %q)", userID, role, models.RoleAdmin)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")
	token, err := m.NewJWT(7, models.RoleUser, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Parse(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT(7, models.RoleUser, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m2.Parse(token); err == nil {
		t.Fatal("token signed with a different key accepted")
	}
}

func TestNewRefreshTokenUnique(t *testing.T) {
	m, _ := NewManager("test-signing-key")
	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two refresh tokens are identical")
	}
	if len(a) != 64 {
		t.Fatalf("refresh token length = %d, want 64 hex chars", len(a))
	}
}
