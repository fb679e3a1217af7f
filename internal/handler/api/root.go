package api

import (
	xhttp "MarketLens/pkg/http"

	"github.com/labstack/echo/v4"
)

// Root composes the route groups into one registrable handler.
type Root struct {
	handlers []xhttp.Handler
}

func NewRoot(handlers ...xhttp.Handler) *Root {
	return &Root{handlers: handlers}
}

func (r *Root) RegisterRoutes(e *echo.Echo) {
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
