package user

import (
	"github.com/itparc/asset-management/internal"
)

var (
	ErrUserNotFound = internal.NewNotFoundError("User not found", internal.ErrCodeResourceAbsent)
	ErrEmailTaken   = internal.NewFieldValidationError("email", "The email has already been taken.")
)

// Profile is the employer extension nested in the current-user payload.
type Profile struct {
	Poste       string `json:"poste"`
	Phone       string `json:"phone"`
	ServiceID   int64  `json:"service_id"`
	ServiceName string `json:"service_name"`
	IsActive    bool   `json:"is_active"`
}

// CurrentUser is the role-shaped /user payload. Profile is present only for
// employers.
type CurrentUser struct {
	ID       int64    `json:"id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Profile  *Profile `json:"profile,omitempty"`
}
