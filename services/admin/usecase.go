package admin

import (
	"context"
	"errors"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/waumini/sadaka/services/admin UserAdminUC

// ErrSubmitInFlight is returned when a registration is attempted while an
// earlier one has not resolved yet.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// UserListSnapshot is a point-in-time view of the cached user list.
type UserListSnapshot struct {
	Items   []models.User
	Loading bool
	Fetched bool
}

// Empty reports whether the collection is empty after a completed fetch.
func (s UserListSnapshot) Empty() bool {
	return s.Fetched && !s.Loading && len(s.Items) == 0
}

// SubmitResult is the outcome of a user registration: field errors to
// display, or an unexpected failure (already notified).
type SubmitResult struct {
	FieldErrors map[string]string
	Err         error
}

// OK reports whether the submission went through.
func (r SubmitResult) OK() bool {
	return r.Err == nil && len(r.FieldErrors) == 0
}

// UserAdminUC is the admin page controller: it owns the unfiltered user list.
type UserAdminUC interface {
	Snapshot() UserListSnapshot

	// Refresh re-fetches the full user list. On failure the previous
	// list is left intact.
	Refresh(ctx context.Context)

	// Create validates and submits the registration draft, then
	// re-fetches the whole list on success.
	Create(ctx context.Context, form UserForm) SubmitResult

	// UpdateRole changes a user's role, then re-fetches on success.
	UpdateRole(ctx context.Context, id int64, role models.Role) error

	// Reset drops cached state, for logout.
	Reset()
}
