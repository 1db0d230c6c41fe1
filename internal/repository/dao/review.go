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
	ErrReviewExists   = errors.New("reservation already reviewed")
	ErrReviewNotFound = errors.New("review not found")
)

type Review struct {
	ReservationID uint        `gorm:"primaryKey;autoIncrement:false"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID"`

	Rating      float64 `gorm:"not null"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
}

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

// InsertAndScore persists the review and stores the recomputed review
// average on the owning opportunity, all inside one transaction so a
// failure leaves neither row behind. It returns the new average.
func (d *ReviewDAO) InsertAndScore(ctx context.Context, review Review, opportunityID uint) (Review, float64, error) {
	var score float64

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrReviewExists
			}

			return err
		}

		// COALESCE guards the zero-review case: AVG over no rows is NULL.
		err := tx.Model(&Review{}).
			Joins("JOIN reservations ON reservations.id = reviews.reservation_id").
			Where("reservations.opportunity_id = ?", opportunityID).
			Select("COALESCE(AVG(reviews.rating), 0)").
			Scan(&score).Error
		if err != nil {
			return err
		}

		return tx.Model(&Opportunity{}).
			Where("id = ?", opportunityID).
			Update("score", score).Error
	})
	if err != nil {
		return Review{}, 0, err
	}

	return review, score, nil
}

func (d *ReviewDAO) FindByReservationID(ctx context.Context, reservationID uint) (Review, error) {
	var review Review

	result := d.db.WithContext(ctx).First(&review, "reservation_id = ?", reservationID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Review{}, ErrReviewNotFound
		}

		return Review{}, result.Error
	}

	return review, nil
}

func (d *ReviewDAO) FindByOpportunityID(ctx context.Context, opportunityID uint) ([]Review, error) {
	var reviews []Review

	result := d.db.WithContext(ctx).
		Joins("JOIN reservations ON reservations.id = reviews.reservation_id").
		Where("reservations.opportunity_id = ?", opportunityID).
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}
