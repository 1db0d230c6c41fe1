package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oportuna/oportuna-api/internal/api/handler/v1/request"
	"github.com/oportuna/oportuna-api/internal/api/handler/v1/response"
	"github.com/oportuna/oportuna-api/internal/config"
	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/pkg/jwthelper"
	"github.com/oportuna/oportuna-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Activate(ctx context.Context, token string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Description  Registers an account and sends an activation email
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /User [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
		case errors.Is(err, service.ErrInvalidIBAN):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidIBAN))
		default:
			err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleActivate godoc
// @Summary      Activate an account
// @Description  Activates the account that owns the given token
// @Tags         auth
// @Produce      json
// @Param        token    path       string true "activation token"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /User/Activate/{token} [get]
func (h *AuthHandler) HandleActivate(ctx *gin.Context) {
	token := ctx.Param("token")
	if token == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing activation token")))
		return
	}

	user, err := h.svc.Activate(ctx.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidActivation) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidActivation))
			return
		}

		err = fmt.Errorf("v1.HandleActivate -> h.svc.Activate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /User/Login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		if errors.Is(err, service.ErrAccountNotActive) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrAccountNotActive))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}
