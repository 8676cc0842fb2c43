package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestGetParamColonPrefixed(t *testing.T) {
	req := httptest.NewRequest("GET", "/trip/5?:id=5", nil)
	if got := getParam(req, "id"); got != "5" {
		t.Fatalf("expected 5, got %q", got)
	}
}

func TestGetParamPlainQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/trip?page=2", nil)
	if got := getParam(req, "page"); got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
}

func TestGetParamMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/trip", nil)
	if got := getParam(req, "id"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
