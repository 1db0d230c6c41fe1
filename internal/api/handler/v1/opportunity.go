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

type OpportunityService interface {
	CreateOpportunity(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error)
	GetOpportunity(ctx context.Context, id uint) (domain.Opportunity, error)
	GetAllOpportunities(ctx context.Context) ([]domain.Opportunity, error)
	GetOpportunitiesByUser(ctx context.Context, userID uint) ([]domain.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id uint, changes domain.Opportunity) (domain.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id uint) error
}

type OpportunityHandler struct {
	svc OpportunityService
}

func NewOpportunityHandler(svc OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		svc: svc,
	}
}

// HandleCreateOpportunity godoc
// @Summary      Create an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOpportunityRequest true "request body"
// @Success      201      {object}  domain.Opportunity
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Opportunity [post]
// @Security     BearerAuth
func (h *OpportunityHandler) HandleCreateOpportunity(ctx *gin.Context) {
	var req request.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateOpportunity(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.UserID))
		default:
			if isValidationError(err) {
				response.RenderErr(ctx, response.ErrBadRequest(err))
				return
			}

			err = fmt.Errorf("v1.HandleCreateOpportunity -> h.svc.CreateOpportunity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/Opportunity/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// HandleGetOpportunity godoc
// @Summary      Get an opportunity by ID
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int true "opportunity ID"
// @Success      200  {object}  domain.Opportunity
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Opportunity/{id} [get]
func (h *OpportunityHandler) HandleGetOpportunity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	opportunity, err := h.svc.GetOpportunity(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOpportunityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetOpportunity -> h.svc.GetOpportunity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, opportunity)
}

// HandleGetAllOpportunities godoc
// @Summary      List all opportunities
// @Description  Returns every listed opportunity, boosted ones first, then by score
// @Tags         opportunities
// @Produce      json
// @Success      200  {array}   domain.Opportunity
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Opportunity [get]
func (h *OpportunityHandler) HandleGetAllOpportunities(ctx *gin.Context) {
	opportunities, err := h.svc.GetAllOpportunities(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoOpportunitiesFound) {
			response.RenderErr(ctx, response.ErrNotFound("opportunities", "count", 0))
			return
		}

		err = fmt.Errorf("v1.HandleGetAllOpportunities -> h.svc.GetAllOpportunities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, opportunities)
}

// HandleGetOpportunitiesByUser godoc
// @Summary      Get the opportunities listed by a user
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int true "user ID"
// @Success      200  {array}   domain.Opportunity
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Opportunity/{id}/AllOpportunities [get]
// @Security     BearerAuth
func (h *OpportunityHandler) HandleGetOpportunitiesByUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	opportunities, err := h.svc.GetOpportunitiesByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoOpportunitiesFound) {
			response.RenderErr(ctx, response.ErrNotFound("opportunities", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetOpportunitiesByUser -> h.svc.GetOpportunitiesByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, opportunities)
}

// HandleUpdateOpportunity godoc
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id       path      int true "opportunity ID"
// @Param        request  body      request.UpdateOpportunityRequest true "request body"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Opportunity/{id} [put]
// @Security     BearerAuth
func (h *OpportunityHandler) HandleUpdateOpportunity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateOpportunityRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateOpportunity(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrOpportunityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", id))
			return
		}

		if isValidationError(err) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateOpportunity -> h.svc.UpdateOpportunity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteOpportunity godoc
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int true "opportunity ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Opportunity/{id} [delete]
// @Security     BearerAuth
func (h *OpportunityHandler) HandleDeleteOpportunity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteOpportunity(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOpportunityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteOpportunity -> h.svc.DeleteOpportunity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
