package models

import "strings"

// Role identifies what a signed-in user is allowed to do.
type Role string

const (
	// RoleAdmin is the church treasurer: full access, including user
	// administration and transaction completion.
	RoleAdmin Role = "ADMIN"
	// RoleFinance is the finance team: transaction recording only.
	RoleFinance Role = "FINANCE"
)

// User represents a finance or admin account as returned by the API.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// FullName returns the user's display name, falling back to the username
// when no name parts are set.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// RegisterUserRequest is the payload for the registration endpoint.
type RegisterUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Role      Role   `json:"role"`
}

// RoleUpdateRequest is the payload for the role update endpoint.
type RoleUpdateRequest struct {
	Role Role `json:"role"`
}
