// Package maintenance schedules and records maintenance operations tied to
// interventions.
package maintenance

import (
	"github.com/itparc/asset-management/internal"
	interventionmodel "github.com/itparc/asset-management/internal/core/datamodel/intervention"
	maintenancemodel "github.com/itparc/asset-management/internal/core/datamodel/maintenance"
)

var (
	ErrMaintenanceNotFound = internal.NewNotFoundError("Maintenance not found", internal.ErrCodeResourceAbsent)
	ErrUnknownIntervention = internal.NewFieldValidationError("intervention_id", "The selected intervention id is invalid.")
)

// Detail is a maintenance row with its intervention embedded.
type Detail struct {
	maintenancemodel.Maintenance
	Intervention *interventionmodel.Intervention `json:"intervention" gorm:"-"`
}
