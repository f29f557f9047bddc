package admin

import (
	"context"

	"github.com/waumini/sadaka/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/waumini/sadaka/services/admin UserGW

// UserGW is the outbound port for the user administration endpoints.
type UserGW interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) error
	UpdateUserRole(ctx context.Context, id int64, role models.Role) error
}
