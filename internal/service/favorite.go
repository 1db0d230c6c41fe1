package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var (
	ErrFavoriteExists   = repository.ErrFavoriteExists
	ErrFavoriteNotFound = repository.ErrFavoriteNotFound
	ErrNoFavoritesFound = errors.New("no favorites found for user")
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error)
	Delete(ctx context.Context, userID, opportunityID uint) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error)
}

type FavoriteService struct {
	repo    FavoriteRepository
	oppRepo OpportunityRepository
}

func NewFavoriteService(repo FavoriteRepository, oppRepo OpportunityRepository) *FavoriteService {
	return &FavoriteService{
		repo:    repo,
		oppRepo: oppRepo,
	}
}

func (s *FavoriteService) AddFavorite(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error) {
	if err := favorite.Validate(); err != nil {
		return domain.Favorite{}, err
	}

	if _, err := s.oppRepo.FindByID(ctx, favorite.OpportunityID); err != nil {
		return domain.Favorite{}, fmt.Errorf("s.oppRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, favorite)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, opportunityID uint) error {
	if err := s.repo.Delete(ctx, userID, opportunityID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	if len(favorites) == 0 {
		return nil, ErrNoFavoritesFound
	}

	return favorites, nil
}
