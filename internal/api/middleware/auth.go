package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/security"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey string

const userKey contextKey = "currentUser"

// UserResolver looks up the token subject. Returns nil, nil when the user no
// longer exists.
type UserResolver interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuthMiddleware authenticates requests and injects the resolved user into
// the request context. Every rejection is a 401 with one of two messages:
// missing token, or invalid token. Expired, malformed, tampered and
// deleted-subject tokens are indistinguishable on the wire.
type AuthMiddleware struct {
	jwtManager *security.JWTManager
	users      UserResolver
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, users: users}
}

// extractToken finds the bearer token. Order: Authorization header with the
// Bearer scheme, then a bare token in the header, then a token query
// parameter.
func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		switch {
		case len(parts) == 2 && strings.EqualFold(parts[0], "bearer"):
			return parts[1]
		case len(parts) == 1:
			// Lenient fallback: the token was sent without a scheme
			return parts[0]
		}
	}

	return r.URL.Query().Get("token")
}

// Authenticate verifies the request's token and resolves the current user
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Unauthorized(w, domain.ErrMissingToken.Error())
			return
		}

		claims, err := m.jwtManager.Validate(token)
		if err != nil {
			response.Unauthorized(w, domain.ErrInvalidToken.Error())
			return
		}

		user, err := m.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to resolve token subject")
			response.Unauthorized(w, domain.ErrInvalidToken.Error())
			return
		}
		if user == nil {
			// Deleted subject looks exactly like a bad token
			response.Unauthorized(w, domain.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser gets the authenticated user from context
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
