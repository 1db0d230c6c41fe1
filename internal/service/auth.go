package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

const activationTokenTTL = 24 * time.Hour

var (
	ErrUserEmailExists   = repository.ErrUserEmailExists
	ErrWrongPassword     = errors.New("wrong password")
	ErrInvalidActivation = errors.New("invalid or expired activation token")
	ErrAccountNotActive  = errors.New("account has not been activated")
)

type ActivationMailer interface {
	SendActivationEmail(user domain.User)
}

type AuthService struct {
	repo   UserRepository
	mailer ActivationMailer
}

func NewAuthService(repo UserRepository, mailer ActivationMailer) *AuthService {
	return &AuthService{
		repo:   repo,
		mailer: mailer,
	}
}

// Signup registers an inactive account and mails its activation token.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	if err := user.Validate(); err != nil {
		return domain.User{}, err
	}

	if err := checkIBAN(user.IBAN); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = string(hash)

	now := time.Now()
	user.RegistrationDate = now
	user.Token = uuid.NewString()
	user.TokenExpiry = now.Add(activationTokenTTL)
	user.IsActive = false

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.mailer.SendActivationEmail(created)

	return created, nil
}

// Activate flips the account active when the token matches and has not
// expired, and burns the token.
func (s *AuthService) Activate(ctx context.Context, token string) (domain.User, error) {
	user, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrInvalidActivation
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	if time.Now().After(user.TokenExpiry) {
		return domain.User{}, ErrInvalidActivation
	}

	user.IsActive = true
	user.Token = ""

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	if !user.IsActive {
		return domain.User{}, ErrAccountNotActive
	}

	return user, nil
}
