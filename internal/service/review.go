package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var (
	ErrReviewExists              = repository.ErrReviewExists
	ErrReviewNotFound            = repository.ErrReviewNotFound
	ErrReviewedReservationAbsent = errors.New("reviewed reservation does not exist")
)

type ReviewRepository interface {
	CreateAndScore(ctx context.Context, review domain.Review, opportunityID uint) (domain.Review, float64, error)
	FindByReservationID(ctx context.Context, reservationID uint) (domain.Review, error)
	FindByOpportunityID(ctx context.Context, opportunityID uint) ([]domain.Review, error)
}

type ReviewService struct {
	repo            ReviewRepository
	reservationRepo ReservationRepository
}

func NewReviewService(repo ReviewRepository, reservationRepo ReservationRepository) *ReviewService {
	return &ReviewService{
		repo:            repo,
		reservationRepo: reservationRepo,
	}
}

// CreateReview stores the review and refreshes the owning opportunity's
// denormalized average score. A missing reservation or a reservation
// with no opportunity link is a caller error, not a lookup miss.
func (s *ReviewService) CreateReview(ctx context.Context, review domain.Review) (domain.Review, float64, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, review.ReservationID)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return domain.Review{}, 0, ErrReviewedReservationAbsent
		}

		return domain.Review{}, 0, fmt.Errorf("s.reservationRepo.FindByID -> %w", err)
	}

	if reservation.OpportunityID == 0 {
		return domain.Review{}, 0, ErrReservationOpportunityGone
	}

	if err = review.Validate(); err != nil {
		return domain.Review{}, 0, err
	}

	created, score, err := s.repo.CreateAndScore(ctx, review, reservation.OpportunityID)
	if err != nil {
		return domain.Review{}, 0, fmt.Errorf("s.repo.CreateAndScore -> %w", err)
	}

	return created, score, nil
}

func (s *ReviewService) GetReview(ctx context.Context, reservationID uint) (domain.Review, error) {
	review, err := s.repo.FindByReservationID(ctx, reservationID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.FindByReservationID -> %w", err)
	}

	return review, nil
}
