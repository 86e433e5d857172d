package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/security"
	"github.com/google/uuid"
)

// UserRepository is the credential store used by the auth service and the
// auth middleware.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuthService handles signup, login and user resolution
type AuthService struct {
	userRepo   UserRepository
	jwtManager *security.JWTManager
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive. Exactly one live user exists per normalized email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account and issues a token. Concurrent signups
// with the same email are resolved by the storage uniqueness constraint: the
// loser surfaces domain.ErrDuplicateEmail, never a partial write.
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (*domain.User, string, error) {
	email := NormalizeEmail(input.Email)

	if err := security.ValidatePassword(input.Password); err != nil {
		return nil, "", domain.NewValidationError(err.Error())
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials, records the login time and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.User, string, error) {
	email := NormalizeEmail(input.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !security.CheckPassword(user.PasswordHash, input.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	loginAt := s.now().UTC()
	if err := s.userRepo.RecordLogin(ctx, user.ID, loginAt); err != nil {
		return nil, "", domain.ErrStorageUnavailable
	}
	user.LastLoginAt = &loginAt

	token, err := s.jwtManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetUserByID retrieves a user by ID. Returns nil, nil when absent.
func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
