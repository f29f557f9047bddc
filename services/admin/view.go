package admin

import (
	"github.com/waumini/sadaka/internal/pkg/models"
)

var roleLabels = map[models.Role]string{
	models.RoleAdmin:   "Admin",
	models.RoleFinance: "Finance",
}

// Row is a user account prepared for display.
type Row struct {
	ID       int64
	FullName string
	Username string
	Email    string
	Role     models.Role
	RoleName string
	Active   bool

	// CanChangeRole is false for the viewer's own row; admins cannot
	// demote themselves from the console.
	CanChangeRole bool
}

// Rows builds display rows for the viewer's session.
func Rows(items []models.User, viewer models.Session) []Row {
	rows := make([]Row, 0, len(items))
	for _, u := range items {
		rows = append(rows, Row{
			ID:            u.ID,
			FullName:      u.FullName(),
			Username:      u.Username,
			Email:         u.Email,
			Role:          u.Role,
			RoleName:      roleLabels[u.Role],
			Active:        u.IsActive,
			CanChangeRole: viewer.Profile == nil || u.ID != viewer.Profile.ID,
		})
	}
	return rows
}
