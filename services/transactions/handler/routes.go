package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/middleware"
)

// RegisterRoutes registers the transactions routes behind the session guard.
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group(constants.RouteTransactions, middleware.RequireSession(h.sessions))
	group.GET("", h.ListPage)
	group.POST("", h.Create)
	group.POST("/:id/complete", h.Complete)
}
