package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oportuna/oportuna-api/internal/domain"
)

func newSignupCandidate() domain.User {
	return domain.User{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		Password:  "secret123",
		Gender:    "F",
		CellPhone: "912345678",
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("registers an inactive account with an activation token", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		mailer := &fakeMailer{}
		svc := NewAuthService(repo, mailer)

		created, err := svc.Signup(context.Background(), newSignupCandidate())
		require.NoError(t, err)

		assert.False(t, created.IsActive)
		assert.NotEmpty(t, created.Token)
		assert.True(t, created.TokenExpiry.After(time.Now()))
		assert.NotEqual(t, "secret123", created.Password)
		assert.Equal(t, 1, mailer.activations)
	})

	t.Run("rejects an invalid cell phone", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		candidate := newSignupCandidate()
		candidate.CellPhone = "1234"

		_, err := svc.Signup(context.Background(), candidate)
		assert.Error(t, err)
	})

	t.Run("rejects an invalid IBAN", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		candidate := newSignupCandidate()
		candidate.IBAN = "not-an-iban"

		_, err := svc.Signup(context.Background(), candidate)
		assert.ErrorIs(t, err, ErrInvalidIBAN)
	})
}

func TestAuthService_Activate(t *testing.T) {
	t.Run("activates the account and burns the token", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		mailer := &fakeMailer{}
		svc := NewAuthService(repo, mailer)

		created, err := svc.Signup(context.Background(), newSignupCandidate())
		require.NoError(t, err)

		activated, err := svc.Activate(context.Background(), created.Token)
		require.NoError(t, err)
		assert.True(t, activated.IsActive)
		assert.Empty(t, activated.Token)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		_, err := svc.Activate(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, ErrInvalidActivation)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{
			1: {
				ID:          1,
				Token:       "expired-token",
				TokenExpiry: time.Now().Add(-time.Hour),
			},
		}}
		svc := NewAuthService(repo, &fakeMailer{})

		_, err := svc.Activate(context.Background(), "expired-token")
		assert.ErrorIs(t, err, ErrInvalidActivation)
	})
}

func TestAuthService_Login(t *testing.T) {
	signup := func(t *testing.T, svc *AuthService) domain.User {
		t.Helper()

		created, err := svc.Signup(context.Background(), newSignupCandidate())
		require.NoError(t, err)

		return created
	}

	t.Run("logs in an activated account", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		created := signup(t, svc)
		_, err := svc.Activate(context.Background(), created.Token)
		require.NoError(t, err)

		user, err := svc.Login(context.Background(), "maria@example.com", "secret123")
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		created := signup(t, svc)
		_, err := svc.Activate(context.Background(), created.Token)
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), "maria@example.com", "wrong")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		_, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects an account that was never activated", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[uint]domain.User{}}
		svc := NewAuthService(repo, &fakeMailer{})

		signup(t, svc)

		_, err := svc.Login(context.Background(), "maria@example.com", "secret123")
		assert.ErrorIs(t, err, ErrAccountNotActive)
	})
}
