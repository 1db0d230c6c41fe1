package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oportuna/oportuna-api/internal/api/handler/v1/request"
	"github.com/oportuna/oportuna-api/internal/api/handler/v1/response"
	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/service"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, float64, error)
	GetReview(ctx context.Context, reservationID uint) (domain.Review, error)
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

// HandleCreateReview godoc
// @Summary      Review a reservation
// @Description  Posts a review for a reservation and recomputes the opportunity's score. A reservation can only be reviewed once.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReviewRequest true "request body"
// @Success      201      {object}  response.ReviewResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Review [post]
// @Security     BearerAuth
func (h *ReviewHandler) HandleCreateReview(ctx *gin.Context) {
	var req request.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	review, score, err := h.svc.CreateReview(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewedReservationAbsent),
			errors.Is(err, service.ErrReservationOpportunityGone):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrReviewExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrReviewExists))
		default:
			if isValidationError(err) {
				response.RenderErr(ctx, response.ErrBadRequest(err))
				return
			}

			err = fmt.Errorf("v1.HandleCreateReview -> h.svc.CreateReview -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.ReviewResponse{
		Review: review,
		Score:  score,
	})
}

// HandleGetReview godoc
// @Summary      Get the review of a reservation
// @Tags         reviews
// @Produce      json
// @Param        id   path      int true "reservation ID"
// @Success      200  {object}  domain.Review
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Review/{id} [get]
// @Security     BearerAuth
func (h *ReviewHandler) HandleGetReview(ctx *gin.Context) {
	reservationID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	review, err := h.svc.GetReview(ctx.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("review", "reservationID", reservationID))
			return
		}

		err = fmt.Errorf("v1.HandleGetReview -> h.svc.GetReview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, review)
}
