package repository

import (
	"context"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
)

var (
	ErrFavoriteExists   = dao.ErrFavoriteExists
	ErrFavoriteNotFound = dao.ErrFavoriteNotFound
)

type FavoriteDAO interface {
	Insert(ctx context.Context, favorite dao.Favorite) (dao.Favorite, error)
	Delete(ctx context.Context, userID, opportunityID uint) error
	FindByUserID(ctx context.Context, userID uint) ([]dao.Favorite, error)
}

type FavoriteRepository struct {
	dao FavoriteDAO
}

func NewFavoriteRepository(dao FavoriteDAO) *FavoriteRepository {
	return &FavoriteRepository{
		dao: dao,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error) {
	created, err := r.dao.Insert(ctx, dao.Favorite{
		UserID:        favorite.UserID,
		OpportunityID: favorite.OpportunityID,
	})
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, opportunityID uint) error {
	if err := r.dao.Delete(ctx, userID, opportunityID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	favorites := make([]domain.Favorite, len(found))
	for i, f := range found {
		favorites[i] = r.daoToDomain(f)
	}

	return favorites, nil
}

func (r *FavoriteRepository) daoToDomain(f dao.Favorite) domain.Favorite {
	return domain.Favorite{
		UserID:        f.UserID,
		OpportunityID: f.OpportunityID,
		CreatedAt:     f.CreatedAt,
	}
}
