package service

import (
	"context"
	"errors"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/repository"
	"fanhub/internal/middleware/auth"
)

// Sentinel errors carry the exact client-facing wording; handlers echo them
// verbatim into response bodies.
var (
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrUserNotFound     = errors.New("User not found")
	ErrInvalidPassword  = errors.New("Invalid password")
)

type AuthService interface {
	Register(ctx context.Context, email, password, username, displayName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register persists a new user with role "user". There is no pre-check for an
// existing email or username; the store's unique indexes are the only guard,
// and a violation surfaces as a raw store error.
func (s *authService) Register(ctx context.Context, email, password, username, displayName string) (*models.User, error) {
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Username:     username,
		DisplayName:  displayName,
		Role:         "user",
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login reports a missing account distinctly from a bad password. The split
// reveals which emails are registered; the frontend relies on it.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}
