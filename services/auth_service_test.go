package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (*AuthService, *fakeUsers) {
	t.Helper()
	users := newFakeUsers()
	return NewAuthService(users, newTokens(t, "secret")), users
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hash the password and default the role to admin", func(t *testing.T) {
		auth, users := newAuth(t)

		res, err := auth.Register(ctx, dto.RegisterRequest{Name: "Admin", Email: " Admin@Example.com ", Password: "password123"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		stored, err := users.FindByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.Password)
		assert.Equal(t, models.RoleAdmin, stored.Role)
	})

	t.Run("Should refuse a taken email", func(t *testing.T) {
		auth, _ := newAuth(t)
		req := dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "password123"}
		_, err := auth.Register(ctx, req)
		require.NoError(t, err)

		_, err = auth.Register(ctx, req)
		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("Should return validation messages", func(t *testing.T) {
		auth, _ := newAuth(t)

		_, err := auth.Register(ctx, dto.RegisterRequest{Email: "bad", Password: "123"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{
			"Please add a name",
			"Please add a valid email",
			"Password must be at least 6 characters",
		}, ve.Messages)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)
	_, err := auth.Register(ctx, dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("Should issue a token for valid credentials", func(t *testing.T) {
		res, err := auth.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("Should not issue a token for a wrong password", func(t *testing.T) {
		res, err := auth.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, res)
	})

	t.Run("Should treat unknown emails as invalid credentials", func(t *testing.T) {
		_, err := auth.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Should require both fields", func(t *testing.T) {
		_, err := auth.Login(ctx, dto.LoginRequest{Email: "admin@example.com"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)
	res, err := auth.Register(ctx, dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("Should resolve the token to its user", func(t *testing.T) {
		user, err := auth.Authenticate(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("Should report a vanished user as not found", func(t *testing.T) {
		token, _, err := auth.tokens.GenerateToken(&models.User{ID: uuid.NewString(), Role: models.RoleAdmin})
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should report bad tokens as invalid", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
