// Package equipment tracks the hardware fleet assigned to employers.
package equipment

import (
	"github.com/itparc/asset-management/internal"
	employermodel "github.com/itparc/asset-management/internal/core/datamodel/employer"
	equipmentmodel "github.com/itparc/asset-management/internal/core/datamodel/equipment"
)

var (
	ErrEquipmentNotFound = internal.NewNotFoundError("Equipment not found", internal.ErrCodeResourceAbsent)
	ErrUnknownEmployer   = internal.NewFieldValidationError("employer_id", "The selected employer id is invalid.")
)

// Detail is an equipment row with its assigned employer embedded.
type Detail struct {
	equipmentmodel.Equipment
	Employer *employermodel.Employer `json:"employer" gorm:"-"`
}

// Filter narrows equipment listings. Zero values mean "no constraint".
type Filter struct {
	Status     string
	EmployerID int64
}
