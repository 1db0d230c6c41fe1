package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

type Reservation struct {
	ID uint `gorm:"primaryKey"`

	OpportunityID uint        `gorm:"not null;index"`
	Opportunity   Opportunity `gorm:"foreignKey:OpportunityID"`
	UserID        uint        `gorm:"not null;index"`
	User          User        `gorm:"foreignKey:UserID"`

	ReservationDate time.Time       `gorm:"not null"`
	CheckInDate     time.Time       `gorm:"not null"`
	NumOfPeople     int             `gorm:"not null"`
	IsActive        bool            `gorm:"not null;default:true"`
	FixedPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

func (d *ReservationDAO) Insert(ctx context.Context, reservation Reservation) (Reservation, error) {
	result := d.db.WithContext(ctx).Create(&reservation)
	if result.Error != nil {
		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByID(ctx context.Context, id uint) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).First(&reservation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByUserID(ctx context.Context, userID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) FindActiveByUserID(ctx context.Context, userID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) Update(ctx context.Context, reservation Reservation) (Reservation, error) {
	result := d.db.WithContext(ctx).Save(&reservation)
	if result.Error != nil {
		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DeactivateExpired flips is_active off for every active reservation
// whose check-in date has passed. The filtered update makes a re-run
// on the same data a no-op.
func (d *ReservationDAO) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("is_active = ? AND check_in_date < ?", true, now).
		Update("is_active", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
