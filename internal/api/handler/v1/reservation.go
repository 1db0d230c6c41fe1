package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oportuna/oportuna-api/internal/api/handler/v1/request"
	"github.com/oportuna/oportuna-api/internal/api/handler/v1/response"
	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/service"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	UpdateReservation(ctx context.Context, id uint, changes domain.Reservation) (domain.Reservation, error)
	DeleteReservation(ctx context.Context, id uint) error
	GetReservation(ctx context.Context, id uint) (domain.Reservation, error)
	GetAllReservationsByUser(ctx context.Context, userID uint) ([]domain.Reservation, error)
	GetAllActiveReservationsByUser(ctx context.Context, userID uint) ([]domain.Reservation, error)
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleCreateReservation godoc
// @Summary      Create a reservation
// @Description  Books an opportunity. The reservation date must be today and the fixed price must equal the opportunity price times the number of people.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReservationRequest true "request body"
// @Success      201      {object}  domain.Reservation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Reservation [post]
// @Security     BearerAuth
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	var req request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateReservation(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOpportunityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", req.OpportunityID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.UserID))
		case errors.Is(err, service.ErrReservationDateNotToday),
			errors.Is(err, service.ErrCheckInDateNotAfterToday),
			errors.Is(err, service.ErrReservationPriceMismatch):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			if isValidationError(err) {
				response.RenderErr(ctx, response.ErrBadRequest(err))
				return
			}

			err = fmt.Errorf("v1.HandleCreateReservation -> h.svc.CreateReservation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/Reservation/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// HandleGetReservation godoc
// @Summary      Get a reservation by ID
// @Tags         reservations
// @Produce      json
// @Param        id   path      int true "reservation ID"
// @Success      200  {object}  domain.Reservation
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Reservation/{id} [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleGetReservation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservation, err := h.svc.GetReservation(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetReservation -> h.svc.GetReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservation)
}

// HandleUpdateReservation godoc
// @Summary      Update a reservation
// @Description  Replaces the mutable fields of a reservation. The booking invariants are re-checked against the opportunity's current price.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id       path      int true "reservation ID"
// @Param        request  body      request.UpdateReservationRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Reservation/{id} [put]
// @Security     BearerAuth
func (h *ReservationHandler) HandleUpdateReservation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateReservationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateReservation(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", id))
		case errors.Is(err, service.ErrReservationOpportunityGone):
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "reservationID", id))
		case errors.Is(err, service.ErrCheckInDateNotAfterToday),
			errors.Is(err, service.ErrReservationPriceMismatch):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			if isValidationError(err) {
				response.RenderErr(ctx, response.ErrBadRequest(err))
				return
			}

			err = fmt.Errorf("v1.HandleUpdateReservation -> h.svc.UpdateReservation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteReservation godoc
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      int true "reservation ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Reservation/{id} [delete]
// @Security     BearerAuth
func (h *ReservationHandler) HandleDeleteReservation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteReservation(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteReservation -> h.svc.DeleteReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetAllReservations godoc
// @Summary      Get all reservations of a user
// @Tags         reservations
// @Produce      json
// @Param        id   path      int true "user ID"
// @Success      200  {array}   domain.Reservation
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Reservation/{id}/AllReservations [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleGetAllReservations(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservations, err := h.svc.GetAllReservationsByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoReservationsFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservations", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetAllReservations -> h.svc.GetAllReservationsByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleGetAllActiveReservations godoc
// @Summary      Get the active reservations of a user
// @Tags         reservations
// @Produce      json
// @Param        id   path      int true "user ID"
// @Success      200  {array}   domain.Reservation
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Reservation/{id}/AllActiveReservations [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleGetAllActiveReservations(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservations, err := h.svc.GetAllActiveReservationsByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoReservationsFound) {
			response.RenderErr(ctx, response.ErrNotFound("active reservations", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetAllActiveReservations -> h.svc.GetAllActiveReservationsByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(id), nil
}
