package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type UpdateUserRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date" format:"DD/MM/YYYY"`
	Gender    string `json:"gender"`
	CellPhone string `json:"cell_phone"`
	IBAN      string `json:"iban,omitempty"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.BirthDate, validation.Date(DateLayout)),
		validation.Field(&req.CellPhone, validation.Required),
	)
}

func (req *UpdateUserRequest) ToDomain() domain.User {
	birthDate, _ := time.Parse(DateLayout, req.BirthDate)

	return domain.User{
		Name:      req.Name,
		BirthDate: birthDate,
		Gender:    req.Gender,
		CellPhone: req.CellPhone,
		IBAN:      req.IBAN,
	}
}
