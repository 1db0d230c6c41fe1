package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type favoriteKey struct {
	userID        uint
	opportunityID uint
}

type fakeFavoriteRepo struct {
	byKey map[favoriteKey]domain.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{byKey: map[favoriteKey]domain.Favorite{}}
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite domain.Favorite) (domain.Favorite, error) {
	key := favoriteKey{favorite.UserID, favorite.OpportunityID}
	if _, ok := f.byKey[key]; ok {
		return domain.Favorite{}, ErrFavoriteExists
	}
	f.byKey[key] = favorite

	return favorite, nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, userID, opportunityID uint) error {
	key := favoriteKey{userID, opportunityID}
	if _, ok := f.byKey[key]; !ok {
		return ErrFavoriteNotFound
	}
	delete(f.byKey, key)

	return nil
}

func (f *fakeFavoriteRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	for key, favorite := range f.byKey {
		if key.userID == userID {
			favorites = append(favorites, favorite)
		}
	}

	return favorites, nil
}

func newFavoriteFixture() (*FavoriteService, *fakeFavoriteRepo) {
	repo := newFakeFavoriteRepo()
	oppRepo := &fakeOpportunityRepo{byID: map[uint]domain.Opportunity{
		1: {ID: 1, Name: "Surf lessons"},
	}}

	return NewFavoriteService(repo, oppRepo), repo
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	t.Run("adds a favorite", func(t *testing.T) {
		svc, _ := newFavoriteFixture()

		created, err := svc.AddFavorite(context.Background(), domain.Favorite{UserID: 20, OpportunityID: 1})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.OpportunityID)
	})

	t.Run("rejects a duplicate", func(t *testing.T) {
		svc, _ := newFavoriteFixture()

		favorite := domain.Favorite{UserID: 20, OpportunityID: 1}
		_, err := svc.AddFavorite(context.Background(), favorite)
		require.NoError(t, err)

		_, err = svc.AddFavorite(context.Background(), favorite)
		assert.ErrorIs(t, err, ErrFavoriteExists)
	})

	t.Run("rejects an unknown opportunity", func(t *testing.T) {
		svc, _ := newFavoriteFixture()

		_, err := svc.AddFavorite(context.Background(), domain.Favorite{UserID: 20, OpportunityID: 99})
		assert.ErrorIs(t, err, ErrOpportunityNotFound)
	})
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	svc, _ := newFavoriteFixture()

	_, err := svc.AddFavorite(context.Background(), domain.Favorite{UserID: 20, OpportunityID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFavorite(context.Background(), 20, 1))

	err = svc.RemoveFavorite(context.Background(), 20, 1)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteService_GetFavoritesByUser(t *testing.T) {
	t.Run("returns the user's favorites", func(t *testing.T) {
		svc, _ := newFavoriteFixture()

		_, err := svc.AddFavorite(context.Background(), domain.Favorite{UserID: 20, OpportunityID: 1})
		require.NoError(t, err)

		favorites, err := svc.GetFavoritesByUser(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("reports an empty set as not found", func(t *testing.T) {
		svc, _ := newFavoriteFixture()

		_, err := svc.GetFavoritesByUser(context.Background(), 20)
		assert.ErrorIs(t, err, ErrNoFavoritesFound)
	})
}
