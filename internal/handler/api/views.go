package api

import (
	models "MarketLens/internal/domain/models"
	"MarketLens/internal/usecase"
	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ViewsHandler serves the render-ready dashboard views.
type ViewsHandler struct {
	logger *xlogger.Logger
	views  *usecase.ViewsUseCase
	auth   *usecase.AuthUseCase
}

func NewViewsHandler(logger *xlogger.Logger, views *usecase.ViewsUseCase, auth *usecase.AuthUseCase) *ViewsHandler {
	return &ViewsHandler{logger: logger, views: views, auth: auth}
}

func (h *ViewsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/views")
	g.GET("/market-overview", h.MarketOverview)
	g.GET("/stocks/:symbol", h.StockAnalysis)
	g.GET("/monitoring", h.Monitoring)
	g.GET("/portfolio", h.Portfolio)
}

func (h *ViewsHandler) MarketOverview(c echo.Context) error {
	sess := sessionFrom(c, h.auth)
	view, err := h.views.MarketOverview(c.Request().Context(), sess)
	if err != nil {
		h.logger.Error("market overview failed", xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *ViewsHandler) StockAnalysis(c echo.Context) error {
	req := &models.StockAnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sess := sessionFrom(c, h.auth)
	view, err := h.views.StockAnalysis(c.Request().Context(), sess, req.Symbol, req.Days)
	if err != nil {
		h.logger.Error("stock analysis failed",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *ViewsHandler) Monitoring(c echo.Context) error {
	limit := xhttp.ParseIntDefault(c.QueryParam("limit"), 50)

	sess := sessionFrom(c, h.auth)
	view, err := h.views.Monitoring(c.Request().Context(), sess, limit)
	if err != nil {
		h.logger.Error("monitoring view failed", xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *ViewsHandler) Portfolio(c echo.Context) error {
	sess := sessionFrom(c, h.auth)
	view, err := h.views.Portfolio(c.Request().Context(), sess)
	if err != nil {
		h.logger.Error("portfolio view failed", xlogger.Error(err))
		return upstreamErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view)
}
