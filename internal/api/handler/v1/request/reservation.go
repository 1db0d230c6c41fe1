package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type CreateReservationRequest struct {
	OpportunityID   uint            `json:"opportunity_id"`
	UserID          uint            `json:"user_id"`
	ReservationDate string          `json:"reservation_date" format:"DD/MM/YYYY"`
	CheckInDate     string          `json:"check_in_date" format:"DD/MM/YYYY"`
	NumOfPeople     int             `json:"num_of_people"`
	FixedPrice      decimal.Decimal `json:"fixed_price"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OpportunityID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.ReservationDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.CheckInDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.NumOfPeople, validation.Required, validation.Min(1)),
	)
}

func (req *CreateReservationRequest) ToDomain() domain.Reservation {
	reservationDate, _ := time.Parse(DateLayout, req.ReservationDate)
	checkInDate, _ := time.Parse(DateLayout, req.CheckInDate)

	return domain.Reservation{
		OpportunityID:   req.OpportunityID,
		UserID:          req.UserID,
		ReservationDate: reservationDate,
		CheckInDate:     checkInDate,
		NumOfPeople:     req.NumOfPeople,
		FixedPrice:      req.FixedPrice,
	}
}

type UpdateReservationRequest struct {
	CheckInDate string          `json:"check_in_date" format:"DD/MM/YYYY"`
	NumOfPeople int             `json:"num_of_people"`
	IsActive    bool            `json:"is_active"`
	FixedPrice  decimal.Decimal `json:"fixed_price"`
}

func (req *UpdateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CheckInDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.NumOfPeople, validation.Required, validation.Min(1)),
	)
}

func (req *UpdateReservationRequest) ToDomain() domain.Reservation {
	checkInDate, _ := time.Parse(DateLayout, req.CheckInDate)

	return domain.Reservation{
		CheckInDate: checkInDate,
		NumOfPeople: req.NumOfPeople,
		IsActive:    req.IsActive,
		FixedPrice:  req.FixedPrice,
	}
}
