package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type PurchaseImpulseRequest struct {
	UserID        uint            `json:"user_id"`
	OpportunityID uint            `json:"opportunity_id"`
	Price         decimal.Decimal `json:"price"`
	ExpireDate    string          `json:"expire_date" format:"DD/MM/YYYY"`
}

func (req *PurchaseImpulseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.OpportunityID, validation.Required),
		validation.Field(&req.ExpireDate, validation.Required, validation.Date(DateLayout)),
	)
}

func (req *PurchaseImpulseRequest) ToDomain() domain.Impulse {
	expireDate, _ := time.Parse(DateLayout, req.ExpireDate)

	return domain.Impulse{
		UserID:        req.UserID,
		OpportunityID: req.OpportunityID,
		Price:         req.Price,
		ExpireDate:    expireDate,
	}
}
