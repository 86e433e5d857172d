package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rrens/autocatalog/internal/api/handler"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/security"
	"github.com/Rrens/autocatalog/internal/service"
	"github.com/google/uuid"
)

// memoryUserRepo is an in-memory UserRepository for handler tests
type memoryUserRepo struct {
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	for _, user := range r.users {
		if user.ID == id {
			user.LastLoginAt = &at
			return nil
		}
	}
	return nil
}

func newTestAuthHandler() (*handler.AuthHandler, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	jwtManager := security.NewJWTManager("test-secret-key-with-32-chars!!", time.Hour)
	authService := service.NewAuthService(repo, jwtManager)
	return handler.NewAuthHandler(authService), repo
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		rec := postJSON(t, authHandler.Signup, "/api/v1/auth/signup", map[string]string{
			"email":    "test@example.com",
			"password": "Str0ng@Pass",
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
		}

		var resp struct {
			User  *domain.User `json:"user"`
			Token string       `json:"token"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.Token == "" {
			t.Error("expected a token")
		}
		if resp.User == nil || resp.User.Email != "test@example.com" {
			t.Errorf("unexpected user: %+v", resp.User)
		}
	})

	t.Run("password hash never leaves the server", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		rec := postJSON(t, authHandler.Signup, "/api/v1/auth/signup", map[string]string{
			"email":    "test@example.com",
			"password": "Str0ng@Pass",
		})

		var raw map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		user, ok := raw["user"].(map[string]any)
		if !ok {
			t.Fatal("expected user object in response")
		}
		if _, leaked := user["password_hash"]; leaked {
			t.Error("password hash present in response body")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		body := map[string]string{"email": "test@example.com", "password": "Str0ng@Pass"}
		postJSON(t, authHandler.Signup, "/api/v1/auth/signup", body)
		rec := postJSON(t, authHandler.Signup, "/api/v1/auth/signup", body)

		if rec.Code != http.StatusConflict {
			t.Errorf("expected status %d, got %d", http.StatusConflict, rec.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		rec := postJSON(t, authHandler.Signup, "/api/v1/auth/signup", map[string]string{
			"email":    "not-an-email",
			"password": "Str0ng@Pass",
		})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		rec := postJSON(t, authHandler.Signup, "/api/v1/auth/signup", map[string]string{
			"email":    "test@example.com",
			"password": "weakpassword",
		})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		authHandler.Signup(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	signup := map[string]string{"email": "test@example.com", "password": "Str0ng@Pass"}

	t.Run("success", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()
		postJSON(t, authHandler.Signup, "/api/v1/auth/signup", signup)

		rec := postJSON(t, authHandler.Login, "/api/v1/auth/login", signup)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
	})

	t.Run("case insensitive email", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()
		postJSON(t, authHandler.Signup, "/api/v1/auth/signup", signup)

		rec := postJSON(t, authHandler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "Test@Example.COM",
			"password": "Str0ng@Pass",
		})

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()
		postJSON(t, authHandler.Signup, "/api/v1/auth/signup", signup)

		rec := postJSON(t, authHandler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "Wr0ng@Pass",
		})

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("unknown email matches wrong password", func(t *testing.T) {
		authHandler, _ := newTestAuthHandler()
		postJSON(t, authHandler.Signup, "/api/v1/auth/signup", signup)

		wrongPass := postJSON(t, authHandler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "Wr0ng@Pass",
		})
		unknownEmail := postJSON(t, authHandler.Login, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "Str0ng@Pass",
		})

		if wrongPass.Code != unknownEmail.Code {
			t.Errorf("status codes differ: %d vs %d", wrongPass.Code, unknownEmail.Code)
		}
		if wrongPass.Body.String() != unknownEmail.Body.String() {
			t.Error("response bodies differ between unknown email and wrong password")
		}
	})
}

func TestHealthHandler_Health(t *testing.T) {
	healthHandler := handler.NewHealthHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	healthHandler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}
