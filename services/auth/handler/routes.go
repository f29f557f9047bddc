package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
)

// RegisterRoutes registers the public entry routes.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(constants.RouteEntry, h.LoginPage)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
}
