package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/models"
)

// UserGateway implements the user administration endpoints of the finance API.
type UserGateway struct {
	client *httpclient.Client
}

// NewUserGateway creates a new user gateway.
func NewUserGateway(client *httpclient.Client) *UserGateway {
	return &UserGateway{client: client}
}

// ListUsers fetches all accounts. The endpoint is unfiltered.
func (g *UserGateway) ListUsers(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := g.client.Get(ctx, "/api/auth/users/", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// RegisterUser creates a new account.
func (g *UserGateway) RegisterUser(ctx context.Context, req models.RegisterUserRequest) error {
	if err := g.client.Post(ctx, "/api/auth/register/", req, nil); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// UpdateUserRole changes an account's role.
func (g *UserGateway) UpdateUserRole(ctx context.Context, id int64, role models.Role) error {
	endpoint := fmt.Sprintf("/api/auth/users/%d/role/", id)
	if err := g.client.Patch(ctx, endpoint, models.RoleUpdateRequest{Role: role}, nil); err != nil {
		return fmt.Errorf("failed to update role for user %d: %w", id, err)
	}
	return nil
}
