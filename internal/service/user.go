package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pascal/iban"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrInvalidIBAN  = errors.New("invalid IBAN")
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByToken(ctx context.Context, token string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// UpdateUser mutates the profile fields. Email, password and the
// activation state have their own flows and are not touched here.
func (s *UserService) UpdateUser(ctx context.Context, id uint, changes domain.User) (domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = changes.Name
	existing.BirthDate = changes.BirthDate
	existing.Gender = changes.Gender
	existing.CellPhone = changes.CellPhone
	existing.IBAN = changes.IBAN

	if err = existing.Validate(); err != nil {
		return domain.User{}, err
	}

	if err = checkIBAN(existing.IBAN); err != nil {
		return domain.User{}, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// checkIBAN accepts an empty value: the IBAN is optional until the user
// wants to receive payouts.
func checkIBAN(value string) error {
	if value == "" {
		return nil
	}

	if _, err := iban.NewIBAN(value); err != nil {
		return ErrInvalidIBAN
	}

	return nil
}
