package api

import (
	"errors"

	"MarketLens/internal/service/session"
	"MarketLens/internal/service/upstream"
	"MarketLens/internal/usecase"
	xhttp "MarketLens/pkg/http"

	"github.com/labstack/echo/v4"
)

// SessionHeader carries the gateway session id; a cookie fallback exists for
// browser clients that cannot set headers on websocket upgrades.
const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
)

func sessionFrom(c echo.Context, auth *usecase.AuthUseCase) *session.Session {
	if id := c.Request().Header.Get(SessionHeader); id != "" {
		return auth.Session(id)
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return auth.Session(cookie.Value)
	}
	return session.Anonymous()
}

// upstreamErrorResponse maps an upstream failure onto the gateway's error
// envelope: 401 stays 401 (the token is already evicted), everything else
// becomes a 502 so clients can tell gateway bugs from backend outages.
func upstreamErrorResponse(c echo.Context, err error) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		if ue.IsAuth() {
			return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("upstream session expired").WithError(err))
		}
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("upstream request failed").WithError(err))
	}
	return xhttp.AppErrorResponse(c, err)
}
