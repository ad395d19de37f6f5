package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/infrastructure/auth"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func bearerFor(t *testing.T, m *auth.JWTManager, user *domain.User) string {
	t.Helper()

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return "Bearer " + token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newTestJWTManager()

	var gotUser *domain.User
	handler := AuthMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", bearerFor(t, m, &domain.User{ID: "user-1", Email: "u@example.com", Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser == nil || gotUser.ID != "user-1" || gotUser.Role != domain.RoleUser {
		t.Fatalf("unexpected user in context: %+v", gotUser)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	m := newTestJWTManager()

	handler := AuthMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTManager("test-secret", -time.Hour)
	m := newTestJWTManager()

	handler := AuthMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", bearerFor(t, expired, &domain.User{ID: "user-1", Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_Admin(t *testing.T) {
	m := newTestJWTManager()

	handler := AuthMiddleware(m)(RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// Regular user is forbidden.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/relatorio", nil)
	req.Header.Set("Authorization", bearerFor(t, m, &domain.User{ID: "user-1", Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user, got %d", rec.Code)
	}

	// Admin passes.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/relatorio", nil)
	req.Header.Set("Authorization", bearerFor(t, m, &domain.User{ID: "admin-1", Role: domain.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}
