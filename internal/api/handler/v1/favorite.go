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

type FavoriteService interface {
	AddFavorite(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, opportunityID uint) error
	GetFavoritesByUser(ctx context.Context, userID uint) ([]domain.Favorite, error)
}

type FavoriteHandler struct {
	svc FavoriteService
}

func NewFavoriteHandler(svc FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		svc: svc,
	}
}

// HandleAddFavorite godoc
// @Summary      Mark an opportunity as favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request  body      request.FavoriteRequest true "request body"
// @Success      201      {object}  domain.Favorite
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /Favorite [post]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleAddFavorite(ctx *gin.Context) {
	var req request.FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	favorite, err := h.svc.AddFavorite(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOpportunityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("opportunity", "ID", req.OpportunityID))
		case errors.Is(err, service.ErrFavoriteExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrFavoriteExists))
		default:
			err = fmt.Errorf("v1.HandleAddFavorite -> h.svc.AddFavorite -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, favorite)
}

// HandleRemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        id             path      int true "user ID"
// @Param        opportunityID  path      int true "opportunity ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Favorite/{id}/{opportunityID} [delete]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleRemoveFavorite(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	opportunityID, err := parseIDParam(ctx, "opportunityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.RemoveFavorite(ctx.Request.Context(), userID, opportunityID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("favorite", "opportunityID", opportunityID))
			return
		}

		err = fmt.Errorf("v1.HandleRemoveFavorite -> h.svc.RemoveFavorite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetFavorites godoc
// @Summary      Get a user's favorites
// @Tags         favorites
// @Produce      json
// @Param        id   path      int true "user ID"
// @Success      200  {array}   domain.Favorite
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Favorite/{id} [get]
// @Security     BearerAuth
func (h *FavoriteHandler) HandleGetFavorites(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	favorites, err := h.svc.GetFavoritesByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoFavoritesFound) {
			response.RenderErr(ctx, response.ErrNotFound("favorites", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetFavorites -> h.svc.GetFavoritesByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}
