package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"tripgoBack/internal/models"
)

func TestStripPasswords(t *testing.T) {
	users := []models.User{
		{ID: 1, Email: "a@example.com", Password: "$2a$10$hash-a"},
		{ID: 2, Email: "b@example.com", Password: "$2a$10$hash-b"},
		{ID: 3, Email: "c@example.com"},
	}

	stripped := stripPasswords(users)

	for _, u := range stripped {
		if u.Password != "" {
			t.Fatalf("user %d still carries a password hash", u.ID)
		}
	}

	data, err := json.Marshal(stripped)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "password") {
		t.Fatalf("serialized user list exposes the password field: %s", data)
	}
}
