package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type fakeReservationRepo struct {
	byID   map[uint]domain.Reservation
	nextID uint
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: map[uint]domain.Reservation{}}
}

func (f *fakeReservationRepo) Create(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
	f.nextID++
	r.ID = f.nextID
	f.byID[r.ID] = r

	return r, nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uint) (domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}

	return r, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeReservationRepo) FindActiveByUserID(_ context.Context, userID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.byID {
		if r.UserID == userID && r.IsActive {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
	f.byID[r.ID] = r

	return r, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return ErrReservationNotFound
	}
	delete(f.byID, id)

	return nil
}

type fakeOpportunityRepo struct {
	byID map[uint]domain.Opportunity
}

func (f *fakeOpportunityRepo) Create(_ context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	f.byID[o.ID] = o
	return o, nil
}

func (f *fakeOpportunityRepo) FindByID(_ context.Context, id uint) (domain.Opportunity, error) {
	o, ok := f.byID[id]
	if !ok {
		return domain.Opportunity{}, ErrOpportunityNotFound
	}

	return o, nil
}

func (f *fakeOpportunityRepo) FindAll(_ context.Context) ([]domain.Opportunity, error) {
	var out []domain.Opportunity
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOpportunityRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Opportunity, error) {
	var out []domain.Opportunity
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) Update(_ context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	f.byID[o.ID] = o
	return o, nil
}

func (f *fakeOpportunityRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return ErrOpportunityNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID map[uint]domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

func (f *fakeUserRepo) FindByToken(_ context.Context, token string) (domain.User, error) {
	for _, u := range f.byID {
		if u.Token == token {
			return u, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u domain.User) (domain.User, error) {
	f.byID[u.ID] = u
	return u, nil
}

type fakeMailer struct {
	confirmations int
	activations   int
}

func (f *fakeMailer) SendReservationConfirmation(_, _ domain.User, _ domain.Reservation, _ domain.Opportunity) {
	f.confirmations++
}

func (f *fakeMailer) SendActivationEmail(_ domain.User) {
	f.activations++
}

func newReservationFixture() (*ReservationService, *fakeReservationRepo, *fakeOpportunityRepo, *fakeMailer) {
	repo := newFakeReservationRepo()
	oppRepo := &fakeOpportunityRepo{byID: map[uint]domain.Opportunity{
		1: {
			ID:        1,
			UserID:    10,
			Name:      "Surf lessons",
			Address:   "Praia de Carcavelos",
			Price:     decimal.NewFromFloat(100.00),
			Vacancies: 30,
			IsActive:  true,
		},
	}}
	userRepo := &fakeUserRepo{byID: map[uint]domain.User{
		10: {ID: 10, Name: "Owner", Email: "owner@example.com"},
		20: {ID: 20, Name: "Customer", Email: "customer@example.com"},
	}}
	mailer := &fakeMailer{}

	return NewReservationService(repo, oppRepo, userRepo, mailer), repo, oppRepo, mailer
}

func validCandidate() domain.Reservation {
	return domain.Reservation{
		OpportunityID:   1,
		UserID:          20,
		ReservationDate: time.Now(),
		CheckInDate:     time.Now().Add(24 * time.Hour),
		NumOfPeople:     2,
		FixedPrice:      decimal.NewFromFloat(200.00),
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a consistent candidate", func(t *testing.T) {
		svc, _, _, mailer := newReservationFixture()

		created, err := svc.CreateReservation(ctx, validCandidate())
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.True(t, created.IsActive)
		assert.True(t, created.FixedPrice.Equal(decimal.NewFromFloat(200.00)))
		assert.Equal(t, 1, mailer.confirmations)
	})

	t.Run("rejects a fixed price that is not price times people", func(t *testing.T) {
		svc, _, _, mailer := newReservationFixture()

		candidate := validCandidate()
		candidate.FixedPrice = decimal.NewFromFloat(150.00)

		_, err := svc.CreateReservation(ctx, candidate)
		assert.ErrorIs(t, err, ErrReservationPriceMismatch)
		assert.Zero(t, mailer.confirmations)
	})

	t.Run("rejects an unknown opportunity", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		candidate := validCandidate()
		candidate.OpportunityID = 999

		_, err := svc.CreateReservation(ctx, candidate)
		assert.ErrorIs(t, err, ErrOpportunityNotFound)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		candidate := validCandidate()
		candidate.UserID = 999

		_, err := svc.CreateReservation(ctx, candidate)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects a reservation date that is not today", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		candidate := validCandidate()
		candidate.ReservationDate = time.Now().AddDate(0, 0, -1)

		_, err := svc.CreateReservation(ctx, candidate)
		assert.ErrorIs(t, err, ErrReservationDateNotToday)
	})

	t.Run("rejects a check-in on the same day", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		candidate := validCandidate()
		candidate.CheckInDate = time.Now().Add(time.Minute)

		_, err := svc.CreateReservation(ctx, candidate)
		assert.ErrorIs(t, err, ErrCheckInDateNotAfterToday)
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("revalidates against the current opportunity price", func(t *testing.T) {
		svc, _, oppRepo, _ := newReservationFixture()

		created, err := svc.CreateReservation(ctx, validCandidate())
		require.NoError(t, err)

		// The owner raises the price after the booking. The stale total
		// no longer satisfies the consistency rule.
		opp := oppRepo.byID[1]
		opp.Price = decimal.NewFromFloat(120.00)
		oppRepo.byID[1] = opp

		changes := created
		changes.NumOfPeople = 3
		changes.FixedPrice = decimal.NewFromFloat(300.00)

		_, err = svc.UpdateReservation(ctx, created.ID, changes)
		assert.ErrorIs(t, err, ErrReservationPriceMismatch)

		changes.FixedPrice = decimal.NewFromFloat(360.00)
		updated, err := svc.UpdateReservation(ctx, created.ID, changes)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.NumOfPeople)
	})

	t.Run("keeps immutable fields immutable", func(t *testing.T) {
		svc, repo, _, _ := newReservationFixture()

		created, err := svc.CreateReservation(ctx, validCandidate())
		require.NoError(t, err)

		changes := created
		changes.OpportunityID = 999
		changes.UserID = 999
		changes.ReservationDate = time.Now().AddDate(0, 0, -30)

		updated, err := svc.UpdateReservation(ctx, created.ID, changes)
		require.NoError(t, err)

		assert.Equal(t, created.OpportunityID, updated.OpportunityID)
		assert.Equal(t, created.UserID, updated.UserID)
		assert.True(t, created.ReservationDate.Equal(updated.ReservationDate))
		assert.Equal(t, updated, repo.byID[created.ID])
	})

	t.Run("missing reservation", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		_, err := svc.UpdateReservation(ctx, 999, validCandidate())
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newReservationFixture()

	created, err := svc.CreateReservation(ctx, validCandidate())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReservation(ctx, created.ID))

	// The second delete of the same id fails the same way as deleting
	// an id that never existed.
	assert.ErrorIs(t, svc.DeleteReservation(ctx, created.ID), ErrReservationNotFound)
	assert.ErrorIs(t, svc.DeleteReservation(ctx, 999), ErrReservationNotFound)
}

func TestGetReservationsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result set is reported as not found", func(t *testing.T) {
		svc, _, _, _ := newReservationFixture()

		_, err := svc.GetAllReservationsByUser(ctx, 20)
		assert.ErrorIs(t, err, ErrNoReservationsFound)

		_, err = svc.GetAllActiveReservationsByUser(ctx, 20)
		assert.ErrorIs(t, err, ErrNoReservationsFound)
	})

	t.Run("active filter excludes deactivated reservations", func(t *testing.T) {
		svc, repo, _, _ := newReservationFixture()

		created, err := svc.CreateReservation(ctx, validCandidate())
		require.NoError(t, err)

		second, err := svc.CreateReservation(ctx, validCandidate())
		require.NoError(t, err)

		expired := repo.byID[second.ID]
		expired.IsActive = false
		repo.byID[second.ID] = expired

		all, err := svc.GetAllReservationsByUser(ctx, 20)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		active, err := svc.GetAllActiveReservationsByUser(ctx, 20)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, created.ID, active[0].ID)
	})
}
