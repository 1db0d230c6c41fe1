package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
)

var ErrReservationNotFound = dao.ErrReservationNotFound

type ReservationDAO interface {
	Insert(ctx context.Context, reservation dao.Reservation) (dao.Reservation, error)
	FindByID(ctx context.Context, id uint) (dao.Reservation, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Reservation, error)
	FindActiveByUserID(ctx context.Context, userID uint) ([]dao.Reservation, error)
	Update(ctx context.Context, reservation dao.Reservation) (dao.Reservation, error)
	Delete(ctx context.Context, id uint) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(reservation))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (domain.Reservation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) FindActiveByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) Update(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(reservation))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.dao.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeactivateExpired -> %w", err)
	}

	return count, nil
}

func (r *ReservationRepository) domainToDao(re domain.Reservation) dao.Reservation {
	return dao.Reservation{
		ID:              re.ID,
		OpportunityID:   re.OpportunityID,
		UserID:          re.UserID,
		ReservationDate: re.ReservationDate,
		CheckInDate:     re.CheckInDate,
		NumOfPeople:     re.NumOfPeople,
		IsActive:        re.IsActive,
		FixedPrice:      re.FixedPrice,
		CreatedAt:       re.CreatedAt,
		UpdatedAt:       re.UpdatedAt,
	}
}

func (r *ReservationRepository) daoToDomain(re dao.Reservation) domain.Reservation {
	return domain.Reservation{
		ID:              re.ID,
		OpportunityID:   re.OpportunityID,
		UserID:          re.UserID,
		ReservationDate: re.ReservationDate,
		CheckInDate:     re.CheckInDate,
		NumOfPeople:     re.NumOfPeople,
		IsActive:        re.IsActive,
		FixedPrice:      re.FixedPrice,
		CreatedAt:       re.CreatedAt,
		UpdatedAt:       re.UpdatedAt,
	}
}

func (r *ReservationRepository) daosToDomain(daos []dao.Reservation) []domain.Reservation {
	reservations := make([]domain.Reservation, len(daos))
	for i, re := range daos {
		reservations[i] = r.daoToDomain(re)
	}

	return reservations
}
