package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// MaxVacancies caps the capacity of any single opportunity.
const MaxVacancies = 30

// Opportunity is a bookable listing (activity or service) with a price
// and a capacity. Score is a denormalized cache of its review average.
type Opportunity struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Vacancies   int             `json:"vacancies"`
	IsActive    bool            `json:"is_active"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Address     string          `json:"address"`
	Score       float64         `json:"score"`
	IsImpulsed  bool            `json:"is_impulsed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (o Opportunity) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&o.Address, validation.Required, validation.Length(2, 200)),
		validation.Field(&o.Price, validation.By(positivePrice)),
		validation.Field(&o.Vacancies, validation.Required, validation.Min(1), validation.Max(MaxVacancies)),
		validation.Field(&o.Category, validation.Length(0, 50)),
		validation.Field(&o.Location, validation.Length(0, 100)),
		validation.Field(&o.Description, validation.Length(0, 1000)),
	)
}
