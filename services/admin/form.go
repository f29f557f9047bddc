package admin

import (
	"strings"

	"github.com/waumini/sadaka/internal/pkg/models"
)

// UserForm is the editable draft of a new account. Error keys use the API
// field names, so server rejections map onto the same display as local
// validation.
type UserForm struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Password2 string
	Role      models.Role
}

// NewUserForm returns a draft with the default role selection.
func NewUserForm() UserForm {
	return UserForm{Role: models.RoleFinance}
}

// Validate checks the draft and returns field-keyed errors. An empty map
// means the draft may be submitted.
func (f *UserForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	if f.Password2 != f.Password {
		errs["password2"] = "Passwords do not match"
	}

	return errs
}

// Request converts a validated draft into the registration payload.
func (f *UserForm) Request() models.RegisterUserRequest {
	return models.RegisterUserRequest{
		Username:  strings.TrimSpace(f.Username),
		Email:     strings.TrimSpace(f.Email),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Password:  f.Password,
		Password2: f.Password2,
		Role:      f.Role,
	}
}
