package api

import (
	models "MarketLens/internal/domain/models"
	"MarketLens/internal/usecase"
	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ActionsHandler exposes paper trading and the assistant.
type ActionsHandler struct {
	logger  *xlogger.Logger
	actions *usecase.ActionsUseCase
	auth    *usecase.AuthUseCase
}

func NewActionsHandler(logger *xlogger.Logger, actions *usecase.ActionsUseCase, auth *usecase.AuthUseCase) *ActionsHandler {
	return &ActionsHandler{logger: logger, actions: actions, auth: auth}
}

func (h *ActionsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/portfolio/transaction", h.SubmitTransaction)
	g.POST("/chat/query", h.ChatQuery)
}

func (h *ActionsHandler) SubmitTransaction(c echo.Context) error {
	req := &models.TransactionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sess := sessionFrom(c, h.auth)
	result, err := h.actions.SubmitTransaction(c.Request().Context(), sess, *req)
	if err != nil {
		h.logger.Error("transaction failed",
			xlogger.String("symbol", req.Symbol),
			xlogger.String("action", req.Action),
			xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *ActionsHandler) ChatQuery(c echo.Context) error {
	req := &models.ChatRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sess := sessionFrom(c, h.auth)
	reply, err := h.actions.ChatQuery(c.Request().Context(), sess, req.Message)
	if err != nil {
		h.logger.Error("chat query failed", xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, reply)
}
