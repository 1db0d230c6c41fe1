package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityValidate(t *testing.T) {
	valid := Opportunity{
		UserID:    1,
		Name:      "Surf lessons",
		Address:   "Praia de Carcavelos",
		Price:     decimal.NewFromFloat(100.00),
		Vacancies: 30,
	}
	assert.NoError(t, valid.Validate())

	t.Run("reports every violated field in one error", func(t *testing.T) {
		invalid := Opportunity{
			UserID:    1,
			Price:     decimal.NewFromFloat(100.00),
			Vacancies: 40,
		}

		err := invalid.Validate()
		require.Error(t, err)

		// Both the missing name and the over-capacity vacancies must be
		// reported together, not just the first one encountered.
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "vacancies")
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		free := valid
		free.Price = decimal.Zero

		err := free.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})
}

func TestUserValidate(t *testing.T) {
	valid := User{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		CellPhone: "912345678",
		Gender:    "F",
	}
	assert.NoError(t, valid.Validate())

	t.Run("cell phone must be exactly nine digits", func(t *testing.T) {
		for _, phone := range []string{"12345678", "1234567890", "91234567a", ""} {
			u := valid
			u.CellPhone = phone

			err := u.Validate()
			require.Error(t, err, "phone %q", phone)
			assert.Contains(t, err.Error(), "cell_phone")
		}
	})
}

func TestReservationValidate(t *testing.T) {
	valid := Reservation{
		OpportunityID: 1,
		UserID:        2,
		CheckInDate:   time.Now().Add(48 * time.Hour),
		NumOfPeople:   2,
		FixedPrice:    decimal.NewFromFloat(200.00),
	}
	assert.NoError(t, valid.Validate())

	t.Run("check-in must be in the future", func(t *testing.T) {
		past := valid
		past.CheckInDate = time.Now().Add(-time.Hour)

		err := past.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check_in_date")
	})
}

func TestReservationPriceMatches(t *testing.T) {
	r := Reservation{
		NumOfPeople: 2,
		FixedPrice:  decimal.NewFromFloat(200.00),
	}

	assert.True(t, r.PriceMatches(decimal.NewFromFloat(100.00)))
	assert.False(t, r.PriceMatches(decimal.NewFromFloat(99.99)))

	// Equality is exact, not tolerant of sub-cent drift.
	r.FixedPrice = decimal.NewFromFloat(200.01)
	assert.False(t, r.PriceMatches(decimal.NewFromFloat(100.00)))
}

func TestSameDay(t *testing.T) {
	now := time.Now()

	assert.True(t, SameDay(now, now.Add(time.Minute)))
	assert.False(t, SameDay(now, now.AddDate(0, 0, 1)))
}
