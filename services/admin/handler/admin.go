package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/middleware"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/services/admin"
)

// AdminHandler serves the user administration page and its actions.
type AdminHandler struct {
	adminUC  admin.UserAdminUC
	sessions middleware.SessionSource
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminUC admin.UserAdminUC, sessions middleware.SessionSource) *AdminHandler {
	return &AdminHandler{
		adminUC:  adminUC,
		sessions: sessions,
	}
}

type adminPage struct {
	Viewer     models.Session
	Rows       []admin.Row
	Loading    bool
	Empty      bool
	Form       admin.UserForm
	FormErrors map[string]string
}

// ListPage renders the user list, fetching it on first visit.
func (h *AdminHandler) ListPage(c echo.Context) error {
	if !h.adminUC.Snapshot().Fetched {
		h.adminUC.Refresh(c.Request().Context())
	}
	return c.Render(http.StatusOK, "admin.html", h.page(admin.NewUserForm(), nil))
}

// CreateUser handles the registration form submission.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	form := admin.UserForm{
		Username:  c.FormValue("username"),
		Email:     c.FormValue("email"),
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Password:  c.FormValue("password"),
		Password2: c.FormValue("password2"),
		Role:      models.Role(c.FormValue("role")),
	}

	res := h.adminUC.Create(c.Request().Context(), form)
	if res.OK() {
		return c.Redirect(http.StatusFound, constants.RouteAdmin)
	}
	if len(res.FieldErrors) > 0 {
		return c.Render(http.StatusBadRequest, "admin.html", h.page(form, res.FieldErrors))
	}
	return c.Render(http.StatusOK, "admin.html", h.page(form, nil))
}

// UpdateRole handles the per-row role change.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("invalid user id", logger.String("id", c.Param("id")))
		return c.Redirect(http.StatusFound, constants.RouteAdmin)
	}

	h.adminUC.UpdateRole(c.Request().Context(), id, models.Role(c.FormValue("role")))
	return c.Redirect(http.StatusFound, constants.RouteAdmin)
}

func (h *AdminHandler) page(form admin.UserForm, formErrors map[string]string) adminPage {
	viewer := h.sessions.Current()
	snap := h.adminUC.Snapshot()
	return adminPage{
		Viewer:     viewer,
		Rows:       admin.Rows(snap.Items, viewer),
		Loading:    snap.Loading,
		Empty:      snap.Empty(),
		Form:       form,
		FormErrors: formErrors,
	}
}
