package request_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oportuna/oportuna-api/internal/api/handler/v1/request"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := request.SignupRequest{
		Name:            "Maria Silva",
		Email:           "maria@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		BirthDate:       "15/03/1990",
		Gender:          "F",
		CellPhone:       "912345678",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("password without digits", func(t *testing.T) {
		req := valid
		req.Password = "secretsecret"
		req.ConfirmPassword = "secretsecret"
		assert.Error(t, req.Validate())
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "abc1"
		req.ConfirmPassword = "abc1"
		assert.Error(t, req.Validate())
	})

	t.Run("confirm password mismatch", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "secret124"
		assert.Error(t, req.Validate())
	})

	t.Run("bad birth date format", func(t *testing.T) {
		req := valid
		req.BirthDate = "1990-03-15"
		assert.Error(t, req.Validate())
	})
}

func TestCreateReservationRequest_Validate(t *testing.T) {
	valid := request.CreateReservationRequest{
		OpportunityID:   1,
		UserID:          2,
		ReservationDate: "30/08/2026",
		CheckInDate:     "05/09/2026",
		NumOfPeople:     3,
		FixedPrice:      decimal.RequireFromString("75.00"),
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing fields are collected together", func(t *testing.T) {
		req := request.CreateReservationRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opportunity_id")
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "check_in_date")
	})

	t.Run("bad check-in date format", func(t *testing.T) {
		req := valid
		req.CheckInDate = "2026/09/05"
		assert.Error(t, req.Validate())
	})
}

func TestCreateReservationRequest_ToDomain(t *testing.T) {
	req := request.CreateReservationRequest{
		OpportunityID:   1,
		UserID:          2,
		ReservationDate: "30/08/2026",
		CheckInDate:     "05/09/2026",
		NumOfPeople:     3,
		FixedPrice:      decimal.RequireFromString("75.00"),
	}

	reservation := req.ToDomain()
	assert.Equal(t, uint(1), reservation.OpportunityID)
	assert.Equal(t, 5, reservation.CheckInDate.Day())
	assert.Equal(t, 2026, reservation.CheckInDate.Year())
	assert.True(t, reservation.FixedPrice.Equal(decimal.RequireFromString("75.00")))
}

func TestCreateReviewRequest_Validate(t *testing.T) {
	t.Run("zero rating is allowed", func(t *testing.T) {
		req := request.CreateReviewRequest{ReservationID: 1, Rating: 0}
		assert.NoError(t, req.Validate())
	})

	t.Run("rating above five", func(t *testing.T) {
		req := request.CreateReviewRequest{ReservationID: 1, Rating: 5.5}
		assert.Error(t, req.Validate())
	})
}
