package auth

import (
	"context"
	"testing"

	"feedline/server/ent"
	"feedline/server/ent/enttest"
	"feedline/server/graphql/models"
	errorsx "feedline/shared/errors"
	"feedline/shared/jwt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *ent.Client {
	t.Setenv("JWT_SECRET", "test-secret")
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func strPtr(s string) *string { return &s }

func TestAuthUsecase_Register(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewAuthUsecase(client)
	ctx := context.Background()

	input := models.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Name:     strPtr("Alice"),
	}

	t.Run("successful registration returns token and user", func(t *testing.T) {
		payload, err := uc.Register(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.NotEmpty(t, payload.Token)
		require.NotNil(t, payload.User)
		assert.Equal(t, "alice", payload.User.Username)
		assert.NotEqual(t, "password123", payload.User.PasswordHash)

		claims, err := jwt.ParseAccessToken(payload.Token)
		require.NoError(t, err)
		assert.Equal(t, payload.User.ID, claims.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := input
		dup.Username = "alice2"
		_, err := uc.Register(ctx, dup)

		require.ErrorIs(t, err, errorsx.ErrBadInput)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := input
		dup.Email = "other@example.com"
		_, err := uc.Register(ctx, dup)

		require.ErrorIs(t, err, errorsx.ErrBadInput)
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("invalid email", func(t *testing.T) {
		bad := input
		bad.Username = "bob"
		bad.Email = "not-an-email"
		_, err := uc.Register(ctx, bad)

		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})

	t.Run("short password", func(t *testing.T) {
		bad := input
		bad.Username = "bob"
		bad.Email = "bob@example.com"
		bad.Password = "short"
		_, err := uc.Register(ctx, bad)

		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})

	t.Run("dangerous characters in name", func(t *testing.T) {
		bad := input
		bad.Username = "bob"
		bad.Email = "bob@example.com"
		bad.Name = strPtr("<script>")
		_, err := uc.Register(ctx, bad)

		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	client := setupTestClient(t)
	defer client.Close()

	uc := NewAuthUsecase(client)
	ctx := context.Background()

	_, err := uc.Register(ctx, models.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		payload, err := uc.Login(ctx, models.LoginInput{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.NotEmpty(t, payload.Token)
		assert.Equal(t, "alice", payload.User.Username)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := uc.Login(ctx, models.LoginInput{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		_, errWrong := uc.Login(ctx, models.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		require.ErrorIs(t, errUnknown, errorsx.ErrBadInput)
		require.ErrorIs(t, errWrong, errorsx.ErrBadInput)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("malformed email rejected before lookup", func(t *testing.T) {
		_, err := uc.Login(ctx, models.LoginInput{
			Email:    "not-an-email",
			Password: "password123",
		})
		assert.ErrorIs(t, err, errorsx.ErrBadInput)
	})
}
