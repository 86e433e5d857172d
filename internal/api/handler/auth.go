package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/middleware"
	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, token, err := h.authService.Register(r.Context(), input)
	if err != nil {
		writeError(w, err, "")
		return
	}

	response.Created(w, domain.AuthResponse{User: user, Token: token})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, domain.AuthResponse{User: user, Token: token})
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	response.OK(w, user)
}
