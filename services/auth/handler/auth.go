package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/services/auth"
)

// Resetter drops a controller's cached state on logout.
type Resetter interface {
	Reset()
}

// AuthHandler serves the login page and the sign-in/sign-out actions.
type AuthHandler struct {
	sessionUC auth.SessionUC
	resetters []Resetter
}

// NewAuthHandler creates a new auth handler. The resetters are cleared on
// logout so the next operator never sees cached lists.
func NewAuthHandler(sessionUC auth.SessionUC, resetters ...Resetter) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		resetters: resetters,
	}
}

type loginPage struct {
	Username string
	Error    string
}

// LoginPage renders the entry page. A signed-in operator is sent straight to
// their landing route instead.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	session := h.sessionUC.Current()
	if session.Authenticated() {
		return c.Redirect(http.StatusFound, landingRoute(session))
	}
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login handles the sign-in form submission.
func (h *AuthHandler) Login(c echo.Context) error {
	creds := models.Credentials{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	route, err := h.sessionUC.Login(c.Request().Context(), creds)
	if err != nil {
		logger.Warn("login failed", logger.String("username", creds.Username))
		return c.Render(http.StatusUnauthorized, "login.html", loginPage{
			Username: creds.Username,
			Error:    "Invalid credentials",
		})
	}

	return c.Redirect(http.StatusFound, route)
}

// Logout clears the session and every cached list, then returns to the
// entry page.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout()
	for _, r := range h.resetters {
		r.Reset()
	}
	return c.Redirect(http.StatusFound, constants.RouteEntry)
}

func landingRoute(session models.Session) string {
	if session.IsAdmin() {
		return constants.RouteAdmin
	}
	return constants.RouteTransactions
}
