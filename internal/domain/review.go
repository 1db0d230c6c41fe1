package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Review is keyed by its reservation: one review per reservation.
type Review struct {
	ReservationID uint      `json:"reservation_id"`
	Rating        float64   `json:"rating"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r Review) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReservationID, validation.Required),
		validation.Field(&r.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}
