package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-with-at-least-32-characters"

func signToken(t *testing.T, role string, exp time.Time, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthz_PublicEndpoints(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	paths := []string{"/health", "/ready", "/live", "/metrics", "/auth/token", "/articles", "/articles/42"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200 without a token", path, rr.Code)
		}
	}
}

func TestAuthz_SourcesReadableAnonymously(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/sources", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("GET /sources: status = %d, want 200 without a token", rr.Code)
	}
}

func TestAuthz_WritesRequireToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/sources"},
		{http.MethodDelete, "/sources/3"},
		{http.MethodPost, "/api/update-articles"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401 without a token", tt.method, tt.path, rr.Code)
		}
	}
}

func TestAuthz_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	token := signToken(t, RoleAdmin, time.Now().Add(time.Hour), testSecret)
	req := httptest.NewRequest(http.MethodPost, "/sources", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with a valid admin token", rr.Code)
	}
}

func TestAuthz_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	token := signToken(t, RoleAdmin, time.Now().Add(-time.Minute), testSecret)
	req := httptest.NewRequest(http.MethodPost, "/sources", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for an expired token", rr.Code)
	}
}

func TestAuthz_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	token := signToken(t, RoleAdmin, time.Now().Add(time.Hour), "a-different-secret-that-is-also-32-chars")
	req := httptest.NewRequest(http.MethodPost, "/sources", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for a forged token", rr.Code)
	}
}

func TestAuthz_NonAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	handler := Authz(okHandler())

	token := signToken(t, "viewer", time.Now().Add(time.Hour), testSecret)
	req := httptest.NewRequest(http.MethodPost, "/sources", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for a non-admin role", rr.Code)
	}
}
