package usecase

import (
	"context"
	"sync"

	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/internal/pkg/notify"
	"github.com/waumini/sadaka/services/transactions"
)

// TransactionController holds the filter set and cached list for the
// transactions page. The mutex guards state swaps only; gateway calls run
// outside the lock, so a slow fetch that resolves after a newer one can
// overwrite it with older data.
type TransactionController struct {
	mu         sync.RWMutex
	filters    models.TransactionFilter
	list       []models.Transaction
	loading    bool
	fetched    bool
	submitting bool

	gw       transactions.TransactionGW
	notifier notify.Notifier
}

// NewTransactionController creates a transactions page controller.
func NewTransactionController(gw transactions.TransactionGW, notifier notify.Notifier) *TransactionController {
	return &TransactionController{
		gw:       gw,
		notifier: notifier,
	}
}

// Snapshot returns a point-in-time copy of the cached list state.
func (c *TransactionController) Snapshot() transactions.ListSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return transactions.ListSnapshot{
		Items:   append([]models.Transaction(nil), c.list...),
		Loading: c.loading,
		Fetched: c.fetched,
	}
}

// Filters returns the current filter set.
func (c *TransactionController) Filters() models.TransactionFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters
}

// SetFilters replaces the whole filter set and re-fetches.
func (c *TransactionController) SetFilters(ctx context.Context, filters models.TransactionFilter) {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh re-fetches the list for the current filter set. On failure the
// previous list is kept and the operator is notified.
func (c *TransactionController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	filters := c.filters
	c.mu.Unlock()

	list, err := c.gw.ListTransactions(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		logger.Error("failed to fetch transactions", logger.Err(err))
		c.notifier.Error("Failed to fetch transactions")
		return
	}
	c.list = list
	c.fetched = true
}

// Create validates and submits the draft. On success the created record is
// prepended to the cached list without a re-fetch.
func (c *TransactionController) Create(ctx context.Context, form transactions.TransactionForm) transactions.SubmitResult {
	if errs := form.Validate(); len(errs) > 0 {
		return transactions.SubmitResult{FieldErrors: errs}
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return transactions.SubmitResult{Err: transactions.ErrSubmitInFlight}
	}
	c.submitting = true
	c.mu.Unlock()

	created, err := c.gw.CreateTransaction(ctx, form.Request())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.HasFieldErrors() {
			return transactions.SubmitResult{FieldErrors: apiErr.FieldErrors}
		}
		logger.Error("failed to record transaction", logger.Err(err))
		c.notifier.Error("Failed to record transaction")
		return transactions.SubmitResult{Err: err}
	}

	c.list = append([]models.Transaction{*created}, c.list...)
	c.notifier.Success("Transaction recorded successfully")
	return transactions.SubmitResult{Record: created}
}

// Complete marks a pending transaction completed, then re-fetches.
func (c *TransactionController) Complete(ctx context.Context, id int64) error {
	if err := c.gw.CompleteTransaction(ctx, id); err != nil {
		logger.Error("failed to complete transaction", logger.Int64("transaction_id", id), logger.Err(err))
		c.notifier.Error("Failed to complete transaction")
		return err
	}

	c.notifier.Success("Transaction completed successfully")
	c.Refresh(ctx)
	return nil
}

// Reset drops all cached state. Called on logout so the next operator never
// sees the previous one's list.
func (c *TransactionController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = models.TransactionFilter{}
	c.list = nil
	c.loading = false
	c.fetched = false
	c.submitting = false
}
