package usecase

import (
	"context"
	"sync"

	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/logger"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/internal/pkg/notify"
	"github.com/waumini/sadaka/services/admin"
)

// UserAdminController holds the cached user list for the admin page. Unlike
// transactions, every successful mutation re-fetches the whole list. The
// mutex guards state swaps only; gateway calls run outside the lock.
type UserAdminController struct {
	mu         sync.RWMutex
	list       []models.User
	loading    bool
	fetched    bool
	submitting bool

	gw       admin.UserGW
	notifier notify.Notifier
}

// NewUserAdminController creates an admin page controller.
func NewUserAdminController(gw admin.UserGW, notifier notify.Notifier) *UserAdminController {
	return &UserAdminController{
		gw:       gw,
		notifier: notifier,
	}
}

// Snapshot returns a point-in-time copy of the cached list state.
func (c *UserAdminController) Snapshot() admin.UserListSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return admin.UserListSnapshot{
		Items:   append([]models.User(nil), c.list...),
		Loading: c.loading,
		Fetched: c.fetched,
	}
}

// Refresh re-fetches the user list. On failure the previous list is kept and
// the operator is notified.
func (c *UserAdminController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	list, err := c.gw.ListUsers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		logger.Error("failed to fetch users", logger.Err(err))
		c.notifier.Error("Failed to fetch users")
		return
	}
	c.list = list
	c.fetched = true
}

// Create validates and submits the registration draft, then re-fetches the
// whole list so the new account shows server-assigned state.
func (c *UserAdminController) Create(ctx context.Context, form admin.UserForm) admin.SubmitResult {
	if errs := form.Validate(); len(errs) > 0 {
		return admin.SubmitResult{FieldErrors: errs}
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return admin.SubmitResult{Err: admin.ErrSubmitInFlight}
	}
	c.submitting = true
	c.mu.Unlock()

	err := c.gw.RegisterUser(ctx, form.Request())

	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()

	if err != nil {
		if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.HasFieldErrors() {
			return admin.SubmitResult{FieldErrors: apiErr.FieldErrors}
		}
		logger.Error("failed to register user", logger.Err(err))
		c.notifier.Error("Failed to create user")
		return admin.SubmitResult{Err: err}
	}

	c.notifier.Success("User created successfully")
	c.Refresh(ctx)
	return admin.SubmitResult{}
}

// UpdateRole changes a user's role, then re-fetches on success.
func (c *UserAdminController) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	if err := c.gw.UpdateUserRole(ctx, id, role); err != nil {
		logger.Error("failed to update user role", logger.Int64("user_id", id), logger.Err(err))
		c.notifier.Error("Failed to update role")
		return err
	}

	c.notifier.Success("Role updated successfully")
	c.Refresh(ctx)
	return nil
}

// Reset drops all cached state. Called on logout.
func (c *UserAdminController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.loading = false
	c.fetched = false
	c.submitting = false
}
