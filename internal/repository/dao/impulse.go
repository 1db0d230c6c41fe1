package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrImpulseExists = errors.New("impulse already exists")

type Impulse struct {
	UserID        uint `gorm:"primaryKey;autoIncrement:false"`
	OpportunityID uint `gorm:"primaryKey;autoIncrement:false"`

	User        User        `gorm:"foreignKey:UserID"`
	Opportunity Opportunity `gorm:"foreignKey:OpportunityID"`

	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpireDate time.Time       `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

type ImpulseDAO struct {
	db *gorm.DB
}

func NewImpulseDAO(db *gorm.DB) *ImpulseDAO {
	return &ImpulseDAO{
		db: db,
	}
}

// Insert persists the impulse and marks the opportunity impulsed in a
// single transaction.
func (d *ImpulseDAO) Insert(ctx context.Context, impulse Impulse) (Impulse, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&impulse).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrImpulseExists
			}

			return err
		}

		return tx.Model(&Opportunity{}).
			Where("id = ?", impulse.OpportunityID).
			Update("is_impulsed", true).Error
	})
	if err != nil {
		return Impulse{}, err
	}

	return impulse, nil
}

func (d *ImpulseDAO) FindByOpportunityID(ctx context.Context, opportunityID uint) ([]Impulse, error) {
	var impulses []Impulse

	result := d.db.WithContext(ctx).Where("opportunity_id = ?", opportunityID).Find(&impulses)
	if result.Error != nil {
		return nil, result.Error
	}

	return impulses, nil
}

// ExpireLapsed removes impulses whose expiry has passed and clears the
// impulsed flag on opportunities left without a live impulse. Both steps
// filter on current state, so re-running over the same rows is a no-op.
func (d *ImpulseDAO) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	var expired int64

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("expire_date < ?", now).Delete(&Impulse{})
		if result.Error != nil {
			return result.Error
		}
		expired = result.RowsAffected

		return tx.Model(&Opportunity{}).
			Where("is_impulsed = ? AND id NOT IN (?)",
				true,
				tx.Session(&gorm.Session{NewDB: true}).Model(&Impulse{}).Select("opportunity_id"),
			).
			Update("is_impulsed", false).Error
	})
	if err != nil {
		return 0, err
	}

	return expired, nil
}
