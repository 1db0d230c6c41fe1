package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type FavoriteRequest struct {
	UserID        uint `json:"user_id"`
	OpportunityID uint `json:"opportunity_id"`
}

func (req *FavoriteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.OpportunityID, validation.Required),
	)
}

func (req *FavoriteRequest) ToDomain() domain.Favorite {
	return domain.Favorite{
		UserID:        req.UserID,
		OpportunityID: req.OpportunityID,
	}
}
