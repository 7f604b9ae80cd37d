package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/repositories"
	"github.com/portfolio-api/utils"
)

// UserStore is the credential store used by authentication
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService registers users and exchanges credentials for tokens
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and signs a token for it
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleAdmin,
	}
	if msgs := models.ValidateUser(&user); len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}

	_, err := s.users.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, ErrEmailInUse
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return s.issue(&user)
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Authenticate resolves a bearer token to the user it was issued for
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
}
