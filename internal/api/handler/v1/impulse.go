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

type ImpulseService interface {
	PurchaseImpulse(ctx context.Context, impulse domain.Impulse) (domain.Impulse, string, error)
	GetImpulsesByOpportunity(ctx context.Context, opportunityID uint) ([]domain.Impulse, error)
}

type ImpulseHandler struct {
	svc ImpulseService
}

func NewImpulseHandler(svc ImpulseService) *ImpulseHandler {
	return &ImpulseHandler{
		svc: svc,
	}
}

// HandlePurchaseImpulse godoc
// @Summary      Purchase an impulse boost
// @Description  Starts a Stripe checkout for boosting an opportunity and records the impulse
// @Tags         impulses
// @Accept       json
// @Produce      json
// @Param        request  body      request.PurchaseImpulseRequest true "request body"
// @Success      201      {object}  response.ImpulsePurchaseResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Impulse [post]
// @Security     BearerAuth
func (h *ImpulseHandler) HandlePurchaseImpulse(ctx *gin.Context) {
	var req request.PurchaseImpulseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	impulse, sessionID, err := h.svc.PurchaseImpulse(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOpportunityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", req.OpportunityID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.UserID))
		case errors.Is(err, service.ErrImpulseExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrImpulseExists))
		case errors.Is(err, service.ErrInvalidPaymentAmount):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentAmount))
		default:
			if isValidationError(err) {
				response.RenderErr(ctx, response.ErrBadRequest(err))
				return
			}

			err = fmt.Errorf("v1.HandlePurchaseImpulse -> h.svc.PurchaseImpulse -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.ImpulsePurchaseResponse{
		Impulse:           impulse,
		CheckoutSessionID: sessionID,
	})
}

// HandleGetImpulses godoc
// @Summary      Get the impulses of an opportunity
// @Tags         impulses
// @Produce      json
// @Param        id   path      int true "opportunity ID"
// @Success      200  {array}   domain.Impulse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Impulse/{id} [get]
// @Security     BearerAuth
func (h *ImpulseHandler) HandleGetImpulses(ctx *gin.Context) {
	opportunityID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	impulses, err := h.svc.GetImpulsesByOpportunity(ctx.Request.Context(), opportunityID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetImpulses -> h.svc.GetImpulsesByOpportunity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, impulses)
}
