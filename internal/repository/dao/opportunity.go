package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

type Opportunity struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID"`

	Name        string `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Vacancies   int             `gorm:"not null"`
	IsActive    bool            `gorm:"not null;default:true"`
	Category    string
	Location    string
	Address     string  `gorm:"not null"`
	Score       float64 `gorm:"not null;default:0"`
	IsImpulsed  bool    `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OpportunityDAO struct {
	db *gorm.DB
}

func NewOpportunityDAO(db *gorm.DB) *OpportunityDAO {
	return &OpportunityDAO{
		db: db,
	}
}

func (d *OpportunityDAO) Insert(ctx context.Context, opportunity Opportunity) (Opportunity, error) {
	result := d.db.WithContext(ctx).Create(&opportunity)
	if result.Error != nil {
		return Opportunity{}, result.Error
	}

	return opportunity, nil
}

func (d *OpportunityDAO) FindByID(ctx context.Context, id uint) (Opportunity, error) {
	var opportunity Opportunity

	result := d.db.WithContext(ctx).First(&opportunity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Opportunity{}, ErrOpportunityNotFound
		}

		return Opportunity{}, result.Error
	}

	return opportunity, nil
}

func (d *OpportunityDAO) FindAll(ctx context.Context) ([]Opportunity, error) {
	var opportunities []Opportunity

	result := d.db.WithContext(ctx).Order("is_impulsed DESC, score DESC").Find(&opportunities)
	if result.Error != nil {
		return nil, result.Error
	}

	return opportunities, nil
}

func (d *OpportunityDAO) FindByUserID(ctx context.Context, userID uint) ([]Opportunity, error) {
	var opportunities []Opportunity

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&opportunities)
	if result.Error != nil {
		return nil, result.Error
	}

	return opportunities, nil
}

func (d *OpportunityDAO) Update(ctx context.Context, opportunity Opportunity) (Opportunity, error) {
	result := d.db.WithContext(ctx).Save(&opportunity)
	if result.Error != nil {
		return Opportunity{}, result.Error
	}

	return opportunity, nil
}

func (d *OpportunityDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Opportunity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}

	return nil
}
