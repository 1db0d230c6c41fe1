package repository

import (
	"context"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
)

var ErrOpportunityNotFound = dao.ErrOpportunityNotFound

type OpportunityDAO interface {
	Insert(ctx context.Context, opportunity dao.Opportunity) (dao.Opportunity, error)
	FindByID(ctx context.Context, id uint) (dao.Opportunity, error)
	FindAll(ctx context.Context) ([]dao.Opportunity, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Opportunity, error)
	Update(ctx context.Context, opportunity dao.Opportunity) (dao.Opportunity, error)
	Delete(ctx context.Context, id uint) error
}

type OpportunityRepository struct {
	dao OpportunityDAO
}

func NewOpportunityRepository(dao OpportunityDAO) *OpportunityRepository {
	return &OpportunityRepository{
		dao: dao,
	}
}

func (r *OpportunityRepository) Create(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(opportunity))
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id uint) (domain.Opportunity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OpportunityRepository) FindAll(ctx context.Context) ([]domain.Opportunity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *OpportunityRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Opportunity, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *OpportunityRepository) Update(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(opportunity))
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OpportunityRepository) domainToDao(o domain.Opportunity) dao.Opportunity {
	return dao.Opportunity{
		ID:          o.ID,
		UserID:      o.UserID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Vacancies:   o.Vacancies,
		IsActive:    o.IsActive,
		Category:    o.Category,
		Location:    o.Location,
		Address:     o.Address,
		Score:       o.Score,
		IsImpulsed:  o.IsImpulsed,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (r *OpportunityRepository) daoToDomain(o dao.Opportunity) domain.Opportunity {
	return domain.Opportunity{
		ID:          o.ID,
		UserID:      o.UserID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Vacancies:   o.Vacancies,
		IsActive:    o.IsActive,
		Category:    o.Category,
		Location:    o.Location,
		Address:     o.Address,
		Score:       o.Score,
		IsImpulsed:  o.IsImpulsed,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (r *OpportunityRepository) daosToDomain(daos []dao.Opportunity) []domain.Opportunity {
	opportunities := make([]domain.Opportunity, len(daos))
	for i, o := range daos {
		opportunities[i] = r.daoToDomain(o)
	}

	return opportunities
}
