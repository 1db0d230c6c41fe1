package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/oportuna/oportuna-api/internal/api/handler/v1"
	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/service"
)

type stubReservationService struct {
	createErr error
	getErr    error
	deleteErr error
}

func (s *stubReservationService) CreateReservation(_ context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	if s.createErr != nil {
		return domain.Reservation{}, s.createErr
	}

	reservation.ID = 42
	reservation.IsActive = true

	return reservation, nil
}

func (s *stubReservationService) UpdateReservation(_ context.Context, _ uint, changes domain.Reservation) (domain.Reservation, error) {
	return changes, nil
}

func (s *stubReservationService) DeleteReservation(_ context.Context, _ uint) error {
	return s.deleteErr
}

func (s *stubReservationService) GetReservation(_ context.Context, id uint) (domain.Reservation, error) {
	if s.getErr != nil {
		return domain.Reservation{}, s.getErr
	}

	return domain.Reservation{ID: id}, nil
}

func (s *stubReservationService) GetAllReservationsByUser(_ context.Context, _ uint) ([]domain.Reservation, error) {
	return nil, service.ErrNoReservationsFound
}

func (s *stubReservationService) GetAllActiveReservationsByUser(_ context.Context, _ uint) ([]domain.Reservation, error) {
	return nil, service.ErrNoReservationsFound
}

func newReservationRouter(svc v1.ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := v1.NewReservationHandler(svc)
	router.POST("/api/Reservation", handler.HandleCreateReservation)
	router.GET("/api/Reservation/:id", handler.HandleGetReservation)
	router.DELETE("/api/Reservation/:id", handler.HandleDeleteReservation)
	router.GET("/api/Reservation/:id/AllReservations", handler.HandleGetAllReservations)

	return router
}

func TestHandleCreateReservation(t *testing.T) {
	today := time.Now().Format("02/01/2006")
	checkIn := time.Now().AddDate(0, 0, 3).Format("02/01/2006")

	body := `{
		"opportunity_id": 1,
		"user_id": 2,
		"reservation_date": "` + today + `",
		"check_in_date": "` + checkIn + `",
		"num_of_people": 2,
		"fixed_price": "50.00"
	}`

	t.Run("creates a reservation and sets the Location header", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodPost, "/api/Reservation", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "/api/Reservation/42", resp.Header().Get("Location"))
	})

	t.Run("maps a price mismatch to 400", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{
			createErr: service.ErrReservationPriceMismatch,
		})

		req := httptest.NewRequest(http.MethodPost, "/api/Reservation", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "fixed price")
	})

	t.Run("maps an unknown opportunity to 404", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{
			createErr: service.ErrOpportunityNotFound,
		})

		req := httptest.NewRequest(http.MethodPost, "/api/Reservation", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodPost, "/api/Reservation", strings.NewReader(`{"num_of_people": "two"}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleGetReservation(t *testing.T) {
	t.Run("returns the reservation", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodGet, "/api/Reservation/7", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"id":7`)
	})

	t.Run("maps a missing reservation to 404", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{
			getErr: service.ErrReservationNotFound,
		})

		req := httptest.NewRequest(http.MethodGet, "/api/Reservation/7", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("rejects a non-numeric ID", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodGet, "/api/Reservation/abc", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleDeleteReservation(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodDelete, "/api/Reservation/7", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("maps a missing reservation to 404", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{
			deleteErr: service.ErrReservationNotFound,
		})

		req := httptest.NewRequest(http.MethodDelete, "/api/Reservation/7", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleGetAllReservations(t *testing.T) {
	router := newReservationRouter(&stubReservationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/Reservation/7/AllReservations", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
