package api

import (
	models "MarketLens/internal/domain/models"
	"MarketLens/internal/usecase"
	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes login, registration and profile operations.
type AuthHandler struct {
	logger *xlogger.Logger
	auth   *usecase.AuthUseCase
}

func NewAuthHandler(logger *xlogger.Logger, auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{logger: logger, auth: auth}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me)
	g.PUT("/me", h.UpdateProfile)
	g.POST("/quiz", h.SubmitQuiz)
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("login failed",
			xlogger.String("username", req.Username),
			xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *AuthHandler) Register(c echo.Context) error {
	req := &models.RegisterRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.auth.Register(c.Request().Context(), *req)
	if err != nil {
		h.logger.Warn("registration failed",
			xlogger.String("username", req.Username),
			xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sess := sessionFrom(c, h.auth)
	if err := h.auth.Logout(c.Request().Context(), sess); err != nil {
		h.logger.Warn("logout failed", xlogger.Error(err))
	}
	return xhttp.NoContentResponse(c)
}

func (h *AuthHandler) Me(c echo.Context) error {
	sess := sessionFrom(c, h.auth)
	profile, err := h.auth.Me(c.Request().Context(), sess)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, profile)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	req := &models.ProfileUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sess := sessionFrom(c, h.auth)
	profile, err := h.auth.UpdateProfile(c.Request().Context(), sess, *req)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, profile)
}

func (h *AuthHandler) SubmitQuiz(c echo.Context) error {
	req := &models.QuizRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sess := sessionFrom(c, h.auth)
	profile, err := h.auth.SubmitQuiz(c.Request().Context(), sess, *req)
	if err != nil {
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, profile)
}
