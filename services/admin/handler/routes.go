package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/middleware"
)

// RegisterRoutes registers the admin routes behind the session and role
// guards.
func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group(constants.RouteAdmin,
		middleware.RequireSession(h.sessions),
		middleware.RequireAdmin(h.sessions),
	)
	group.GET("", h.ListPage)
	group.POST("/users", h.CreateUser)
	group.POST("/users/:id/role", h.UpdateRole)
}
