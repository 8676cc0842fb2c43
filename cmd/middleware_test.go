package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"tripgoBack/internal/config"
	"tripgoBack/internal/models"
)

const testSigningKey = "test-signing-key"

func newTestApp() *application {
	var cfg config.Config
	cfg.JWT.SigningKey = testSigningKey
	return &application{config: cfg}
}

func signedToken(t *testing.T, userID int, role string, ttl time.Duration) string {
	t.Helper()
	claims := &models.Claims{
		UserID: uint(userID),
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := newTestApp()

	handler := app.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), models.RoleClient)

	req := httptest.NewRequest("GET", "/user/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddlewareInvalidTokenNoRefresh(t *testing.T) {
	app := newTestApp()

	handler := app.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}), models.RoleClient)

	req := httptest.NewRequest("GET", "/user/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := newTestApp()

	var gotUserID int
	var gotRole string
	handler := app.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("user_id").(int)
		gotRole, _ = r.Context().Value("role").(string)
		w.WriteHeader(http.StatusOK)
	}), models.RoleClient)

	req := httptest.NewRequest("GET", "/user/7", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, models.RoleClient, time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 7 {
		t.Errorf("expected user_id 7 in context, got %d", gotUserID)
	}
	if gotRole != models.RoleClient {
		t.Errorf("expected role client in context, got %q", gotRole)
	}
}

func TestJWTMiddlewareRoleEnforcement(t *testing.T) {
	app := newTestApp()

	handler := app.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), models.RoleAdmin)

	req := httptest.NewRequest("DELETE", "/booking/1", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, models.RoleClient, time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client on admin route, got %d", rec.Code)
	}
}

func TestJWTMiddlewareAdminPassesProviderCheck(t *testing.T) {
	app := newTestApp()

	handler := app.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), models.RoleProvider)

	req := httptest.NewRequest("POST", "/trip", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 1, models.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin on provider route, got %d", rec.Code)
	}
}

func TestSecureHeaders(t *testing.T) {
	handler := secureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got := rec.Header().Get("X-Frame-Options"); got != "deny" {
		t.Errorf("expected X-Frame-Options deny, got %q", got)
	}
	if got := rec.Header().Get("X-XSS-Protection"); got != "1; mode=block" {
		t.Errorf("unexpected X-XSS-Protection: %q", got)
	}
}

func TestMakeResponseJSON(t *testing.T) {
	handler := makeResponseJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
}
