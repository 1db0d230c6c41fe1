package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// Impulse is a paid, time-limited promotional boost applied to an
// opportunity. It lapses once ExpireDate passes.
type Impulse struct {
	UserID        uint            `json:"user_id"`
	OpportunityID uint            `json:"opportunity_id"`
	Price         decimal.Decimal `json:"price"`
	ExpireDate    time.Time       `json:"expire_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (i Impulse) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required),
		validation.Field(&i.OpportunityID, validation.Required),
		validation.Field(&i.Price, validation.By(positivePrice)),
		validation.Field(&i.ExpireDate, validation.Required, validation.By(futureDate)),
	)
}

// Expired reports whether the impulse has lapsed as of now.
func (i Impulse) Expired(now time.Time) bool {
	return i.ExpireDate.Before(now)
}
