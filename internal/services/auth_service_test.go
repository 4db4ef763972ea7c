package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestTokenService())
	seedUser(t, db, "a@x.com", "s3cret-pass")

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@x.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin_InactiveAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestTokenService())
	user := seedUser(t, db, "off@x.com", "pw-long-enough")
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "off@x.com", Password: "pw-long-enough"})
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	tokens := newTestTokenService()
	svc := NewAuthService(db, tokens)
	seeded := seedUser(t, db, "a@x.com", "s3cret-pass")

	t.Run("valid token", func(t *testing.T) {
		tok, err := tokens.Issue("a@x.com")
		require.NoError(t, err)

		user, err := svc.Resolve(context.Background(), tok)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid token for unknown user", func(t *testing.T) {
		tok, err := tokens.Issue("ghost@x.com")
		require.NoError(t, err)

		// Same error as a bad token: no user enumeration.
		_, err = svc.Resolve(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		user := seedUser(t, db, "off@x.com", "pw-long-enough")
		require.NoError(t, db.Model(user).Update("is_active", false).Error)

		tok, err := tokens.Issue("off@x.com")
		require.NoError(t, err)

		_, err = svc.Resolve(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInactiveAccount)
	})
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestTokenService())

	user, err := svc.CreateUser(context.Background(), "new@x.com", "pw-long-enough", "New User")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw-long-enough", user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = svc.CreateUser(context.Background(), "new@x.com", "other-pass", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
