package domain

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var cellPhoneExp = regexp.MustCompile(`^[0-9]{9}$`)

type User struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	ExternalID       string    `json:"external_id,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`
	BirthDate        time.Time `json:"birth_date"`
	Gender           string    `json:"gender"`
	CellPhone        string    `json:"cell_phone"`
	IBAN             string    `json:"iban,omitempty"`
	Token            string    `json:"-"`
	TokenExpiry      time.Time `json:"-"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.CellPhone, validation.Required, validation.Match(cellPhoneExp)),
		validation.Field(&u.Gender, validation.In("M", "F", "O")),
	)
}
