package auth

import (
	"context"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/waumini/sadaka/services/auth AuthGW

// AuthGW wraps the auth endpoints of the finance API.
type AuthGW interface {
	// ExchangeToken trades credentials for a bearer token.
	ExchangeToken(ctx context.Context, creds models.Credentials) (string, error)

	// VerifyToken checks the currently held token against the API.
	VerifyToken(ctx context.Context) error

	// GetProfile fetches the caller's user record.
	GetProfile(ctx context.Context) (*models.User, error)
}
