package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// Reservation is a user's booking of an opportunity for a date and
// headcount. FixedPrice is the total agreed at booking time and is
// persisted independently of later opportunity price changes.
type Reservation struct {
	ID              uint            `json:"id"`
	OpportunityID   uint            `json:"opportunity_id"`
	UserID          uint            `json:"user_id"`
	ReservationDate time.Time       `json:"reservation_date"`
	CheckInDate     time.Time       `json:"check_in_date"`
	NumOfPeople     int             `json:"num_of_people"`
	IsActive        bool            `json:"is_active"`
	FixedPrice      decimal.Decimal `json:"fixed_price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (r Reservation) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OpportunityID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.NumOfPeople, validation.Required, validation.Min(1), validation.Max(MaxVacancies)),
		validation.Field(&r.FixedPrice, validation.By(positivePrice)),
		validation.Field(&r.CheckInDate, validation.Required, validation.By(futureDate)),
	)
}

// PriceMatches reports whether the fixed price equals the given
// opportunity price multiplied by the headcount. The comparison is
// exact: no rounding tolerance.
func (r Reservation) PriceMatches(opportunityPrice decimal.Decimal) bool {
	expected := opportunityPrice.Mul(decimal.NewFromInt(int64(r.NumOfPeople)))

	return r.FixedPrice.Equal(expected)
}
