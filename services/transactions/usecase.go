package transactions

import (
	"context"
	"errors"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/waumini/sadaka/services/transactions TransactionUC

// ErrSubmitInFlight is returned when a create is attempted while an earlier
// one has not resolved yet.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ListSnapshot is a point-in-time view of the cached transaction list. The
// list is a cache of server state for the current filter set, not
// authoritative.
type ListSnapshot struct {
	Items   []models.Transaction
	Loading bool
	Fetched bool
}

// Empty reports whether the collection is empty after a completed fetch.
func (s ListSnapshot) Empty() bool {
	return s.Fetched && !s.Loading && len(s.Items) == 0
}

// SubmitResult is the outcome of a form submission: a created record, field
// errors to display, or an unexpected failure (already notified).
type SubmitResult struct {
	Record      *models.Transaction
	FieldErrors map[string]string
	Err         error
}

// OK reports whether the submission went through.
func (r SubmitResult) OK() bool {
	return r.Err == nil && len(r.FieldErrors) == 0
}

// TransactionUC is the transactions page controller: it owns the filter set
// and the cached list for the current filter view.
type TransactionUC interface {
	Snapshot() ListSnapshot
	Filters() models.TransactionFilter

	// SetFilters replaces the whole filter set and re-fetches. The fetch
	// is keyed by the full set, never by individual fields.
	SetFilters(ctx context.Context, filters models.TransactionFilter)

	// Refresh re-fetches the list for the current filter set. On failure
	// the previous list is left intact.
	Refresh(ctx context.Context)

	// Create validates and submits the draft. The created record is
	// prepended to the cached list for immediate feedback; no re-fetch.
	Create(ctx context.Context, form TransactionForm) SubmitResult

	// Complete marks a pending transaction completed, then re-fetches the
	// full filtered list to reflect authoritative state.
	Complete(ctx context.Context, id int64) error

	// Reset drops cached state, for logout.
	Reset()
}
