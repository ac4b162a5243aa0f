// Package directory manages the organizational services (departments) that
// employers belong to.
package directory

import (
	"github.com/itparc/asset-management/internal"
)

// DefaultServiceName is the fallback department created when the last other
// service is deleted while employers still point at it.
const DefaultServiceName = "Default Service"

var (
	ErrServiceNotFound = internal.NewNotFoundError("Service not found", internal.ErrCodeResourceAbsent)
	ErrNameTaken       = internal.NewFieldValidationError("name", "The name has already been taken.")
)
