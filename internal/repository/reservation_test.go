package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oportuna/oportuna-api/internal/domain"
)

func TestReservationMapperRoundTrip(t *testing.T) {
	repo := NewReservationRepository(nil)

	original := domain.Reservation{
		ID:              42,
		OpportunityID:   7,
		UserID:          3,
		ReservationDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckInDate:     time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC),
		NumOfPeople:     2,
		IsActive:        true,
		FixedPrice:      decimal.NewFromFloat(200.00),
	}

	mapped := repo.daoToDomain(repo.domainToDao(original))

	// Every field the consistency rules depend on must survive the
	// conversion both ways.
	assert.Equal(t, original.OpportunityID, mapped.OpportunityID)
	assert.Equal(t, original.UserID, mapped.UserID)
	assert.True(t, original.ReservationDate.Equal(mapped.ReservationDate))
	assert.True(t, original.CheckInDate.Equal(mapped.CheckInDate))
	assert.Equal(t, original.NumOfPeople, mapped.NumOfPeople)
	assert.Equal(t, original.IsActive, mapped.IsActive)
	assert.True(t, original.FixedPrice.Equal(mapped.FixedPrice))
	assert.Equal(t, original, mapped)
}

func TestOpportunityMapperRoundTrip(t *testing.T) {
	repo := NewOpportunityRepository(nil)

	original := domain.Opportunity{
		ID:         7,
		UserID:     1,
		Name:       "Kayak tour",
		Price:      decimal.NewFromFloat(35.50),
		Vacancies:  12,
		IsActive:   true,
		Address:    "Doca de Santo Amaro",
		Score:      4.5,
		IsImpulsed: true,
	}

	mapped := repo.daoToDomain(repo.domainToDao(original))

	assert.Equal(t, original, mapped)
	assert.True(t, original.Price.Equal(mapped.Price))
}
