package auth

import (
	"context"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/waumini/sadaka/services/auth SessionUC

// SessionUC is the session store: it owns the authentication token and the
// resolved profile for the lifetime of the process.
type SessionUC interface {
	// Restore rebuilds the session from the persisted token at startup.
	// Any failure leaves a clean logged-out state; it never propagates.
	Restore(ctx context.Context)

	// Login exchanges credentials for a token and returns the
	// role-dependent landing route.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout clears the persisted token and profile. No network call.
	Logout()

	// Current returns a snapshot for the guard and handlers.
	Current() models.Session
}
