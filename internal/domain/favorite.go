package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Favorite marks a user's bookmark of an opportunity. The pair
// (UserID, OpportunityID) is the identity; duplicates are a conflict.
type Favorite struct {
	UserID        uint      `json:"user_id"`
	OpportunityID uint      `json:"opportunity_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (f Favorite) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.UserID, validation.Required),
		validation.Field(&f.OpportunityID, validation.Required),
	)
}
