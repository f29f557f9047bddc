package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/models"
)

// AuthGateway implements the auth endpoints of the finance API.
type AuthGateway struct {
	client *httpclient.Client
}

// NewAuthGateway creates a new auth gateway.
func NewAuthGateway(client *httpclient.Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// ExchangeToken trades credentials for a bearer token.
func (g *AuthGateway) ExchangeToken(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.TokenResponse
	if err := g.client.Post(ctx, "/api/auth/token/", creds, &resp); err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return resp.Access, nil
}

// VerifyToken checks the currently held token against the API.
func (g *AuthGateway) VerifyToken(ctx context.Context) error {
	if err := g.client.Get(ctx, "/api/auth/token/verify/", nil, nil); err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}
	return nil
}

// GetProfile fetches the caller's user record.
func (g *AuthGateway) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.client.Get(ctx, "/api/auth/profile/", nil, &user); err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	return &user, nil
}
