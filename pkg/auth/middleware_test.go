package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	secret := SecretBytes("middleware-test-secret")
	called := false
	h := RequireAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("the protected handler must not run without a token")
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	token, _ := IssueToken("admin@example.com", SecretBytes("other-secret"), time.Hour)
	called := false
	h := RequireAuth(SecretBytes("middleware-test-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("the protected handler must not run with a forged token")
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	secret := SecretBytes("middleware-test-secret")
	token, _ := IssueToken("admin@example.com", secret, -time.Minute)
	h := RequireAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the protected handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidTokenSetsContext(t *testing.T) {
	secret := SecretBytes("middleware-test-secret")
	token, _ := IssueToken("admin@example.com", secret, time.Hour)

	var gotEmail string
	h := RequireAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = AdminEmailFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "admin@example.com" {
		t.Errorf("expected admin email in context, got %q", gotEmail)
	}
}
