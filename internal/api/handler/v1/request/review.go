package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type CreateReviewRequest struct {
	ReservationID uint    `json:"reservation_id"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`
}

func (req *CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReservationID, validation.Required),
		validation.Field(&req.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

func (req *CreateReviewRequest) ToDomain() domain.Review {
	return domain.Review{
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Description:   req.Description,
	}
}
