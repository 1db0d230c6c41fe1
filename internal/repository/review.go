package repository

import (
	"context"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
)

var (
	ErrReviewExists   = dao.ErrReviewExists
	ErrReviewNotFound = dao.ErrReviewNotFound
)

type ReviewDAO interface {
	InsertAndScore(ctx context.Context, review dao.Review, opportunityID uint) (dao.Review, float64, error)
	FindByReservationID(ctx context.Context, reservationID uint) (dao.Review, error)
	FindByOpportunityID(ctx context.Context, opportunityID uint) ([]dao.Review, error)
}

type ReviewRepository struct {
	dao ReviewDAO
}

func NewReviewRepository(dao ReviewDAO) *ReviewRepository {
	return &ReviewRepository{
		dao: dao,
	}
}

// CreateAndScore persists the review and returns it together with the
// opportunity's recomputed review average.
func (r *ReviewRepository) CreateAndScore(ctx context.Context, review domain.Review, opportunityID uint) (domain.Review, float64, error) {
	created, score, err := r.dao.InsertAndScore(ctx, r.domainToDao(review), opportunityID)
	if err != nil {
		return domain.Review{}, 0, fmt.Errorf("r.dao.InsertAndScore -> %w", err)
	}

	return r.daoToDomain(created), score, nil
}

func (r *ReviewRepository) FindByReservationID(ctx context.Context, reservationID uint) (domain.Review, error) {
	found, err := r.dao.FindByReservationID(ctx, reservationID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("r.dao.FindByReservationID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReviewRepository) FindByOpportunityID(ctx context.Context, opportunityID uint) ([]domain.Review, error) {
	found, err := r.dao.FindByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOpportunityID -> %w", err)
	}

	reviews := make([]domain.Review, len(found))
	for i, rev := range found {
		reviews[i] = r.daoToDomain(rev)
	}

	return reviews, nil
}

func (r *ReviewRepository) domainToDao(rev domain.Review) dao.Review {
	return dao.Review{
		ReservationID: rev.ReservationID,
		Rating:        rev.Rating,
		Description:   rev.Description,
		CreatedAt:     rev.CreatedAt,
	}
}

func (r *ReviewRepository) daoToDomain(rev dao.Review) domain.Review {
	return domain.Review{
		ReservationID: rev.ReservationID,
		Rating:        rev.Rating,
		Description:   rev.Description,
		CreatedAt:     rev.CreatedAt,
	}
}
