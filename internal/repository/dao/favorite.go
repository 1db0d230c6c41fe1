package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type Favorite struct {
	UserID        uint `gorm:"primaryKey;autoIncrement:false"`
	OpportunityID uint `gorm:"primaryKey;autoIncrement:false"`

	User        User        `gorm:"foreignKey:UserID"`
	Opportunity Opportunity `gorm:"foreignKey:OpportunityID"`

	CreatedAt time.Time `gorm:"not null"`
}

type FavoriteDAO struct {
	db *gorm.DB
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{
		db: db,
	}
}

func (d *FavoriteDAO) Insert(ctx context.Context, favorite Favorite) (Favorite, error) {
	result := d.db.WithContext(ctx).Create(&favorite)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Favorite{}, ErrFavoriteExists
		}

		return Favorite{}, result.Error
	}

	return favorite, nil
}

func (d *FavoriteDAO) Delete(ctx context.Context, userID, opportunityID uint) error {
	result := d.db.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Delete(&Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (d *FavoriteDAO) FindByUserID(ctx context.Context, userID uint) ([]Favorite, error) {
	var favorites []Favorite

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}

	return favorites, nil
}
