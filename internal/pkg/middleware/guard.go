package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/models"
)

// SessionSource provides the current session snapshot. The guard holds no
// state of its own; it re-reads the session on every request.
type SessionSource interface {
	Current() models.Session
}

// RequireSession gates a route on an authenticated session. Requests that
// arrive before the initial restore has resolved get a 503; requests without
// a session are redirected to the entry route.
func RequireSession(sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := sessions.Current()
			if session.Loading {
				return c.String(http.StatusServiceUnavailable, "session restore in progress")
			}
			if !session.Authenticated() {
				return c.Redirect(http.StatusFound, constants.RouteEntry)
			}
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the treasurer role. Signed-in users without
// it are sent to the default authenticated route, not the entry route.
func RequireAdmin(sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Current().IsAdmin() {
				return c.Redirect(http.StatusFound, constants.RouteTransactions)
			}
			return next(c)
		}
	}
}
