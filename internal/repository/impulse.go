package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
)

var ErrImpulseExists = dao.ErrImpulseExists

type ImpulseDAO interface {
	Insert(ctx context.Context, impulse dao.Impulse) (dao.Impulse, error)
	FindByOpportunityID(ctx context.Context, opportunityID uint) ([]dao.Impulse, error)
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
}

type ImpulseRepository struct {
	dao ImpulseDAO
}

func NewImpulseRepository(dao ImpulseDAO) *ImpulseRepository {
	return &ImpulseRepository{
		dao: dao,
	}
}

func (r *ImpulseRepository) Create(ctx context.Context, impulse domain.Impulse) (domain.Impulse, error) {
	created, err := r.dao.Insert(ctx, dao.Impulse{
		UserID:        impulse.UserID,
		OpportunityID: impulse.OpportunityID,
		Price:         impulse.Price,
		ExpireDate:    impulse.ExpireDate,
	})
	if err != nil {
		return domain.Impulse{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ImpulseRepository) FindByOpportunityID(ctx context.Context, opportunityID uint) ([]domain.Impulse, error) {
	found, err := r.dao.FindByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOpportunityID -> %w", err)
	}

	impulses := make([]domain.Impulse, len(found))
	for i, imp := range found {
		impulses[i] = r.daoToDomain(imp)
	}

	return impulses, nil
}

func (r *ImpulseRepository) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.dao.ExpireLapsed(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.ExpireLapsed -> %w", err)
	}

	return count, nil
}

func (r *ImpulseRepository) daoToDomain(i dao.Impulse) domain.Impulse {
	return domain.Impulse{
		UserID:        i.UserID,
		OpportunityID: i.OpportunityID,
		Price:         i.Price,
		ExpireDate:    i.ExpireDate,
		CreatedAt:     i.CreatedAt,
	}
}
