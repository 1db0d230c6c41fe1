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

// fakeReviewRepo recomputes the mean rating per opportunity the way the
// transactional store does.
type fakeReviewRepo struct {
	byReservation map[uint]domain.Review
	opportunityOf map[uint]uint
	scores        map[uint]float64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		byReservation: map[uint]domain.Review{},
		opportunityOf: map[uint]uint{},
		scores:        map[uint]float64{},
	}
}

func (f *fakeReviewRepo) CreateAndScore(_ context.Context, review domain.Review, opportunityID uint) (domain.Review, float64, error) {
	if _, ok := f.byReservation[review.ReservationID]; ok {
		return domain.Review{}, 0, ErrReviewExists
	}

	f.byReservation[review.ReservationID] = review
	f.opportunityOf[review.ReservationID] = opportunityID

	var sum float64
	var n int
	for reservationID, r := range f.byReservation {
		if f.opportunityOf[reservationID] == opportunityID {
			sum += r.Rating
			n++
		}
	}

	score := 0.0
	if n > 0 {
		score = sum / float64(n)
	}
	f.scores[opportunityID] = score

	return review, score, nil
}

func (f *fakeReviewRepo) FindByReservationID(_ context.Context, reservationID uint) (domain.Review, error) {
	r, ok := f.byReservation[reservationID]
	if !ok {
		return domain.Review{}, ErrReviewNotFound
	}

	return r, nil
}

func (f *fakeReviewRepo) FindByOpportunityID(_ context.Context, opportunityID uint) ([]domain.Review, error) {
	var out []domain.Review
	for reservationID, r := range f.byReservation {
		if f.opportunityOf[reservationID] == opportunityID {
			out = append(out, r)
		}
	}

	return out, nil
}

func newReviewFixture(t *testing.T) (*ReviewService, *fakeReviewRepo, *fakeReservationRepo) {
	t.Helper()

	reservations := newFakeReservationRepo()
	for i := uint(1); i <= 3; i++ {
		_, err := reservations.Create(context.Background(), domain.Reservation{
			OpportunityID: 1,
			UserID:        20,
			CheckInDate:   time.Now().Add(24 * time.Hour),
			NumOfPeople:   1,
			FixedPrice:    decimal.NewFromFloat(100.00),
		})
		require.NoError(t, err)
	}

	reviews := newFakeReviewRepo()

	return NewReviewService(reviews, reservations), reviews, reservations
}

func TestCreateReviewRecomputesAverage(t *testing.T) {
	ctx := context.Background()
	svc, reviews, _ := newReviewFixture(t)

	ratings := []float64{3.0, 4.0, 5.0}
	var score float64
	for i, rating := range ratings {
		var err error
		_, score, err = svc.CreateReview(ctx, domain.Review{
			ReservationID: uint(i + 1),
			Rating:        rating,
		})
		require.NoError(t, err)
	}

	assert.InDelta(t, 4.0, score, 1e-9)
	assert.InDelta(t, 4.0, reviews.scores[1], 1e-9)
}

func TestCreateReviewFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing reservation is a caller error", func(t *testing.T) {
		svc, _, _ := newReviewFixture(t)

		_, _, err := svc.CreateReview(ctx, domain.Review{ReservationID: 999, Rating: 4})
		assert.ErrorIs(t, err, ErrReviewedReservationAbsent)
	})

	t.Run("one review per reservation", func(t *testing.T) {
		svc, _, _ := newReviewFixture(t)

		_, _, err := svc.CreateReview(ctx, domain.Review{ReservationID: 1, Rating: 4})
		require.NoError(t, err)

		_, _, err = svc.CreateReview(ctx, domain.Review{ReservationID: 1, Rating: 5})
		assert.ErrorIs(t, err, ErrReviewExists)
	})

	t.Run("reservation without opportunity link", func(t *testing.T) {
		svc, _, reservations := newReviewFixture(t)

		broken := reservations.byID[1]
		broken.OpportunityID = 0
		reservations.byID[1] = broken

		_, _, err := svc.CreateReview(ctx, domain.Review{ReservationID: 1, Rating: 4})
		assert.ErrorIs(t, err, ErrReservationOpportunityGone)
	})
}
