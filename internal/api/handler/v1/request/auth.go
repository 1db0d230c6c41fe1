package request

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/oportuna/oportuna-api/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "02/01/2006"

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	// The pattern uses lookaheads, which the standard regexp package
	// does not support.
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	BirthDate       string `json:"birth_date" format:"DD/MM/YYYY"`
	Gender          string `json:"gender"`
	CellPhone       string `json:"cell_phone"`
	IBAN            string `json:"iban,omitempty"`
	ExternalID      string `json:"external_id,omitempty"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.BirthDate, validation.Date(DateLayout)),
		validation.Field(&req.CellPhone, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

func (req *SignupRequest) ToDomain() domain.User {
	birthDate, _ := time.Parse(DateLayout, req.BirthDate)

	return domain.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		BirthDate:  birthDate,
		Gender:     req.Gender,
		CellPhone:  req.CellPhone,
		IBAN:       req.IBAN,
		ExternalID: req.ExternalID,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
