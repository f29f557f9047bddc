package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/middleware"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/services/transactions"
)

// TransactionHandler serves the transactions page and its actions.
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
	sessions      middleware.SessionSource
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionUC transactions.TransactionUC, sessions middleware.SessionSource) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		sessions:      sessions,
	}
}

type transactionsPage struct {
	Viewer      models.Session
	Rows        []transactions.Row
	Loading     bool
	Empty       bool
	Filters     models.TransactionFilter
	FilterQuery string
	Form        transactions.TransactionForm
	FormErrors  map[string]string
}

// ListPage renders the filtered transaction list. Query parameters are the
// filter set; changing them re-fetches.
func (h *TransactionHandler) ListPage(c echo.Context) error {
	filters := filterFromQuery(c)

	if filters != h.transactionUC.Filters() {
		h.transactionUC.SetFilters(c.Request().Context(), filters)
	} else if !h.transactionUC.Snapshot().Fetched {
		h.transactionUC.Refresh(c.Request().Context())
	}

	return c.Render(http.StatusOK, "transactions.html", h.page(transactions.NewTransactionForm(), nil))
}

// Create handles the record form submission. A successful create redirects
// back to the list with the filter set preserved; validation failures
// re-render the page with the draft intact.
func (h *TransactionHandler) Create(c echo.Context) error {
	form := transactions.TransactionForm{
		MemberName:  c.FormValue("member_name"),
		PhoneNumber: c.FormValue("phone_number"),
		Amount:      c.FormValue("amount"),
		Category:    models.TransactionCategory(c.FormValue("category")),
		PaymentType: models.PaymentType(c.FormValue("payment_type")),
	}

	res := h.transactionUC.Create(c.Request().Context(), form)
	if res.OK() {
		return c.Redirect(http.StatusFound, routeWithQuery(c))
	}
	if len(res.FieldErrors) > 0 {
		return c.Render(http.StatusBadRequest, "transactions.html", h.page(form, res.FieldErrors))
	}
	return c.Render(http.StatusOK, "transactions.html", h.page(form, nil))
}

// Complete handles the pending-to-completed transition. The role check is
// repeated here; the button being hidden is not enough.
func (h *TransactionHandler) Complete(c echo.Context) error {
	if !h.sessions.Current().IsAdmin() {
		return c.Redirect(http.StatusFound, constants.RouteTransactions)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("invalid transaction id", logger.String("id", c.Param("id")))
		return c.Redirect(http.StatusFound, routeWithQuery(c))
	}

	h.transactionUC.Complete(c.Request().Context(), id)
	return c.Redirect(http.StatusFound, routeWithQuery(c))
}

func (h *TransactionHandler) page(form transactions.TransactionForm, formErrors map[string]string) transactionsPage {
	viewer := h.sessions.Current()
	snap := h.transactionUC.Snapshot()
	filters := h.transactionUC.Filters()
	return transactionsPage{
		Viewer:      viewer,
		Rows:        transactions.Rows(snap.Items, viewer),
		Loading:     snap.Loading,
		Empty:       snap.Empty(),
		Filters:     filters,
		FilterQuery: filters.Values().Encode(),
		Form:        form,
		FormErrors:  formErrors,
	}
}

func filterFromQuery(c echo.Context) models.TransactionFilter {
	return models.TransactionFilter{
		Category:    models.TransactionCategory(c.QueryParam("category")),
		PaymentType: models.PaymentType(c.QueryParam("paymentType")),
		Status:      models.TransactionStatus(c.QueryParam("status")),
		DateFrom:    c.QueryParam("dateFrom"),
		DateTo:      c.QueryParam("dateTo"),
	}
}

func routeWithQuery(c echo.Context) string {
	if q := c.QueryString(); q != "" {
		return constants.RouteTransactions + "?" + q
	}
	return constants.RouteTransactions
}
