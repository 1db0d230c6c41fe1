package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var (
	ErrReservationNotFound        = repository.ErrReservationNotFound
	ErrNoReservationsFound        = errors.New("no reservations found for user")
	ErrReservationDateNotToday    = errors.New("reservation date must be today")
	ErrCheckInDateNotAfterToday   = errors.New("check-in date must be after today")
	ErrReservationPriceMismatch   = errors.New("fixed price must equal opportunity price times number of people")
	ErrReservationOpportunityGone = errors.New("reservation has no linked opportunity")
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	FindByID(ctx context.Context, id uint) (domain.Reservation, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error)
	FindActiveByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error)
	Update(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

// ConfirmationMailer sends booking confirmations. Fire and forget: no
// error is consumed by the reservation flow.
type ConfirmationMailer interface {
	SendReservationConfirmation(customer, owner domain.User, reservation domain.Reservation, opportunity domain.Opportunity)
}

type ReservationService struct {
	repo     ReservationRepository
	oppRepo  OpportunityRepository
	userRepo UserRepository
	mailer   ConfirmationMailer
}

func NewReservationService(repo ReservationRepository, oppRepo OpportunityRepository, userRepo UserRepository, mailer ConfirmationMailer) *ReservationService {
	return &ReservationService{
		repo:     repo,
		oppRepo:  oppRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// CreateReservation books an opportunity. The referenced opportunity and
// user must exist, the reservation date must be today, the check-in date
// must be strictly after today, and the claimed fixed price must equal
// the opportunity price multiplied by the headcount, exactly.
func (s *ReservationService) CreateReservation(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	opportunity, err := s.oppRepo.FindByID(ctx, reservation.OpportunityID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.oppRepo.FindByID -> %w", err)
	}

	customer, err := s.userRepo.FindByID(ctx, reservation.UserID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	now := time.Now()
	if !domain.SameDay(reservation.ReservationDate, now) {
		return domain.Reservation{}, ErrReservationDateNotToday
	}

	if err = s.checkUpdatableInvariants(reservation, opportunity, now); err != nil {
		return domain.Reservation{}, err
	}

	if err = reservation.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	reservation.IsActive = true

	created, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	owner, err := s.userRepo.FindByID(ctx, opportunity.UserID)
	if err != nil {
		zap.L().Warn("skipping reservation confirmation, owner lookup failed", zap.Error(err))
	} else {
		s.mailer.SendReservationConfirmation(customer, owner, created, opportunity)
	}

	return created, nil
}

// UpdateReservation mutates only the check-in date, headcount, active
// flag and fixed price. The fixed price is re-validated against the
// opportunity's current price, not the price at original booking time.
func (s *ReservationService) UpdateReservation(ctx context.Context, id uint, changes domain.Reservation) (domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	opportunity, err := s.oppRepo.FindByID(ctx, existing.OpportunityID)
	if err != nil {
		if errors.Is(err, ErrOpportunityNotFound) {
			return domain.Reservation{}, ErrReservationOpportunityGone
		}

		return domain.Reservation{}, fmt.Errorf("s.oppRepo.FindByID -> %w", err)
	}

	existing.CheckInDate = changes.CheckInDate
	existing.NumOfPeople = changes.NumOfPeople
	existing.IsActive = changes.IsActive
	existing.FixedPrice = changes.FixedPrice

	if err = s.checkUpdatableInvariants(existing, opportunity, time.Now()); err != nil {
		return domain.Reservation{}, err
	}

	if err = existing.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id uint) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reservation, nil
}

// GetAllReservationsByUser treats an empty result set as not found.
// The policy is carried over from the original product behavior.
func (s *ReservationService) GetAllReservationsByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	if len(reservations) == 0 {
		return nil, ErrNoReservationsFound
	}

	return reservations, nil
}

func (s *ReservationService) GetAllActiveReservationsByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActiveByUserID -> %w", err)
	}
	if len(reservations) == 0 {
		return nil, ErrNoReservationsFound
	}

	return reservations, nil
}

func (s *ReservationService) checkUpdatableInvariants(reservation domain.Reservation, opportunity domain.Opportunity, now time.Time) error {
	if !reservation.CheckInDate.After(now) || domain.SameDay(reservation.CheckInDate, now) {
		return ErrCheckInDateNotAfterToday
	}

	if !reservation.PriceMatches(opportunity.Price) {
		return ErrReservationPriceMismatch
	}

	return nil
}
