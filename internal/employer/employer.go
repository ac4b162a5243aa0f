// Package employer manages the employer workforce: account provisioning with
// mailed credentials, profile upkeep and activation toggling.
package employer

import (
	"time"

	"github.com/itparc/asset-management/internal"
)

var (
	ErrEmployerNotFound = internal.NewNotFoundError("Employer not found", internal.ErrCodeResourceAbsent)
	ErrEmailTaken       = internal.NewFieldValidationError("email", "The email has already been taken.")
	ErrUnknownService   = internal.NewFieldValidationError("service_id", "The selected service id is invalid.")
)

// View is the composite employer payload joining the employer row with its
// user and service.
type View struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Poste     string     `json:"poste"`
	Phone     string     `json:"phone"`
	Service   string     `json:"service"`
	ServiceID int64      `json:"service_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
